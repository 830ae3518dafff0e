package harvest

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// encodeParams folds query parameters into the "&key=value" suffix appended
// after the access token. Keys are emitted in lexicographic order and both
// keys and values are percent-encoded, so a given parameter set always
// produces the same URL.
func encodeParams(params url.Values) string {
	if len(params) == 0 {
		return ""
	}
	return "&" + params.Encode()
}

// listValues serializes a typed list-options struct (its `url` tags) into
// query parameters. A nil opts yields no parameters.
func listValues(opts any) (url.Values, error) {
	vals, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("encoding query options: %w", err)
	}
	return vals, nil
}

// YesNo is a boolean that renders as the "yes"/"no" pair the reporting
// filters expect instead of "true"/"false".
type YesNo bool

// EncodeValues implements query.Encoder.
func (y YesNo) EncodeValues(key string, v *url.Values) error {
	if y {
		v.Set(key, "yes")
	} else {
		v.Set(key, "no")
	}
	return nil
}

// Yes returns a pointer to YesNo(true) for filling filter fields.
func Yes() *YesNo { y := YesNo(true); return &y }

// No returns a pointer to YesNo(false) for filling filter fields.
func No() *YesNo { n := YesNo(false); return &n }
