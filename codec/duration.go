package codec

import (
	"time"

	"github.com/jsondec/jsondec"
)

// Duration decodes a Go duration string such as "1h30m" into time.Duration.
func Duration() jsondec.Decoder[time.Duration] {
	return jsondec.MapErr(jsondec.String(), time.ParseDuration)
}
