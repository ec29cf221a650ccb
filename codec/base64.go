package codec

import (
	"encoding/base64"

	"github.com/jsondec/jsondec"
)

// Base64 decodes a standard-alphabet base64 string into bytes.
func Base64() jsondec.Decoder[[]byte] {
	return jsondec.MapErr(jsondec.String(), base64.StdEncoding.DecodeString)
}

// Base64URL is Base64 for the URL-safe alphabet.
func Base64URL() jsondec.Decoder[[]byte] {
	return jsondec.MapErr(jsondec.String(), base64.URLEncoding.DecodeString)
}
