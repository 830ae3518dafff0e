package harvest

import (
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryTransport is an http.RoundTripper that retries idempotent requests
// (GET and HEAD) on network failure, 429 and 5xx responses, with
// exponential backoff. Other methods pass through untouched, as does the
// final response once retries are exhausted.
//
// The API itself never retries. Install this on the injected client to opt
// in:
//
//	api := harvest.NewAPI(sub, token, harvest.WithHTTPClient(&http.Client{
//		Transport: &harvest.RetryTransport{MaxRetries: 3},
//	}))
type RetryTransport struct {
	// Base is the underlying round tripper; http.DefaultTransport when nil.
	Base http.RoundTripper
	// MaxRetries caps the retry attempts per request, not counting the
	// initial one.
	MaxRetries uint64
	// InitialInterval overrides the first backoff delay. Defaults to the
	// backoff package's 500ms.
	InitialInterval time.Duration
}

func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	// Only GET and HEAD are safe to replay: write requests carry one-shot
	// bodies and are not idempotent against this service.
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return base.RoundTrip(req)
	}

	bo := backoff.NewExponentialBackOff()
	if t.InitialInterval > 0 {
		bo.InitialInterval = t.InitialInterval
	}
	// MaxRetries bounds the attempts; without this NextBackOff starts
	// returning Stop after backoff's default elapsed-time cap.
	bo.MaxElapsedTime = 0
	bo.Reset()

	var attempts uint64
	for {
		resp, err := base.RoundTrip(req)
		if !retryable(resp, err) || attempts >= t.MaxRetries {
			return resp, err
		}
		attempts++
		if resp != nil {
			// Drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(bo.NextBackOff()):
		}
	}
}

func retryable(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
}
