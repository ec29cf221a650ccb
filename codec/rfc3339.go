// Package codec offers ready-made decoders for common wire formats, built
// from the jsondec combinators in the way applications are expected to
// extend them.
package codec

import (
	"time"

	"github.com/jsondec/jsondec"
)

// TimeRFC3339 decodes an RFC3339 timestamp string into time.Time.
// Fractional seconds are accepted; a malformed timestamp fails with the
// parse error attached to the offending node.
func TimeRFC3339() jsondec.Decoder[time.Time] {
	return jsondec.MapErr(jsondec.String(), parseRFC3339)
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
