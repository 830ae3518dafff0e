package harvest

import "fmt"

// APIError is a non-2xx response from the service. The body is kept
// verbatim; Harvest reports most validation failures as plain text.
type APIError struct {
	StatusCode int
	Body       string
	Method     string
	URL        string // access token redacted
}

func (e *APIError) Error() string {
	return fmt.Sprintf("harvest API error %d on %s %s: %s", e.StatusCode, e.Method, e.URL, e.Body)
}

// DecodeError reports a response payload that does not match the resource
// schema: a required field that is missing or null, or a field of the
// wrong type.
type DecodeError struct {
	Resource string // envelope key, e.g. "day_entry"
	Field    string // offending JSON field; empty when the envelope itself is missing
	Expected string // expected type
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("harvest: response missing %q envelope", e.Resource)
	}
	return fmt.Sprintf("harvest: decoding %s: field %q missing or invalid (want %s)", e.Resource, e.Field, e.Expected)
}

// MissingTokenError is returned by TokenFromFragment when the redirect
// fragment carries no access token. AuthURL is the authorization URL the
// user should be sent back to.
type MissingTokenError struct {
	AuthURL string
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("no access token in response; authorize at %s", e.AuthURL)
}
