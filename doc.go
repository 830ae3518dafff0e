// Package harvest is a typed client for the Harvest v1 time tracking and
// invoicing API.
//
// A session is bound to one account subdomain and an OAuth 2 access token:
//
//	api := harvest.NewAPI("acme", token)
//	today, err := api.GetToday(ctx)
//
// Every operation takes a context and performs exactly one HTTP round trip;
// retry policy belongs to the caller (see RetryTransport). Responses decode
// into typed records whose required fields are enforced on arrival. Optional
// fields are pointers: JSON null and an absent key both decode to nil, and
// nil fields are omitted on encode.
package harvest
