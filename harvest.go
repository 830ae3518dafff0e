package harvest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "harvest-go/1.0"
)

// Option configures an API session.
type Option func(*API)

// WithHTTPClient sets the HTTP client used for all requests. Wrap its
// Transport in RetryTransport to opt in to retries.
func WithHTTPClient(client *http.Client) Option {
	return func(a *API) { a.httpClient = client }
}

// WithLogger enables debug logging of requests and responses. Logged URLs
// have the access token redacted.
func WithLogger(logger hclog.Logger) Option {
	return func(a *API) { a.logger = logger }
}

// WithBaseURL overrides the account base URL. Intended for tests.
func WithBaseURL(base string) Option {
	return func(a *API) { a.baseURL = strings.TrimRight(base, "/") }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(a *API) { a.userAgent = ua }
}

// API is a session against one Harvest account. The zero value is not
// usable; construct with NewAPI.
type API struct {
	subdomain  string
	token      string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     hclog.Logger
}

// NewAPI returns a session for {subdomain}.harvestapp.com authenticated by
// an OAuth access token. Credentials are not checked locally; the service
// rejects bad ones on first use.
func NewAPI(subdomain, token string, opts ...Option) *API {
	a := &API{
		subdomain:  subdomain,
		token:      token,
		baseURL:    fmt.Sprintf("https://%s.harvestapp.com", subdomain),
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Subdomain returns the account subdomain the session is bound to.
func (a *API) Subdomain() string {
	return a.subdomain
}

// NewRequest builds a request for a service endpoint without performing any
// I/O. path is the endpoint path ("/projects/123"); params are extra query
// parameters, appended after the access token in sorted order. body may be
// nil, pre-encoded JSON ([]byte or json.RawMessage), or any JSON-encodable
// value.
func (a *API) NewRequest(ctx context.Context, method, path string, params url.Values, body any) (*http.Request, error) {
	endpoint := a.baseURL + path + "?access_token=" + url.QueryEscape(a.token) + encodeParams(params)

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	case json.RawMessage:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.userAgent != "" {
		req.Header.Set("User-Agent", a.userAgent)
	}
	return req, nil
}

// do executes req and returns the response body. Non-2xx statuses produce
// *APIError. do performs exactly one round trip; retry policy belongs to
// the injected http.Client.
func (a *API) do(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("harvest API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	a.logger.Debug("harvest API response",
		"method", req.Method,
		"url", redactToken(req.URL),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Method:     req.Method,
			URL:        redactToken(req.URL),
		}
	}
	return body, nil
}

// doString performs a request whose response is returned undecoded. DELETE
// and the state-toggle endpoints answer with plain confirmation bodies
// rather than enveloped JSON.
func (a *API) doString(ctx context.Context, method, path string, body any) (string, error) {
	req, err := a.NewRequest(ctx, method, path, nil, body)
	if err != nil {
		return "", err
	}
	data, err := a.do(req)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// fetchOne GETs path and decodes a single enveloped resource.
func fetchOne[T any](ctx context.Context, a *API, path string, params url.Values) (T, error) {
	var zero T
	req, err := a.NewRequest(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return zero, err
	}
	data, err := a.do(req)
	if err != nil {
		return zero, err
	}
	return unwrap[T](data)
}

// fetchList GETs path and decodes an array of enveloped resources.
func fetchList[T any](ctx context.Context, a *API, path string, params url.Values) ([]T, error) {
	req, err := a.NewRequest(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return nil, err
	}
	data, err := a.do(req)
	if err != nil {
		return nil, err
	}
	return unwrapList[T](data)
}

// send writes a wrapped body ({key: payload}) and decodes the enveloped
// resource the service echoes back.
func send[T any](ctx context.Context, a *API, method, path, key string, payload any) (T, error) {
	var zero T
	body, err := wrap(key, payload)
	if err != nil {
		return zero, err
	}
	req, err := a.NewRequest(ctx, method, path, nil, body)
	if err != nil {
		return zero, err
	}
	data, err := a.do(req)
	if err != nil {
		return zero, err
	}
	return unwrap[T](data)
}

// create POSTs a payload wrapped under T's own resource key.
func create[T any](ctx context.Context, a *API, path string, payload any) (T, error) {
	return send[T](ctx, a, http.MethodPost, path, resourceKey[T](), payload)
}

// update PUTs a payload wrapped under T's own resource key.
func update[T any](ctx context.Context, a *API, path string, payload any) (T, error) {
	return send[T](ctx, a, http.MethodPut, path, resourceKey[T](), payload)
}

// redactToken masks the access_token query value for logs and errors.
func redactToken(u *url.URL) string {
	q := u.Query()
	if q.Has("access_token") {
		q.Set("access_token", "REDACTED")
	}
	r := *u
	r.RawQuery = q.Encode()
	return r.String()
}

// Bool returns a pointer to v, for filling optional fields.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for filling optional fields.
func String(v string) *string { return &v }

// Int64 returns a pointer to v, for filling optional fields.
func Int64(v int64) *int64 { return &v }

// Float64 returns a pointer to v, for filling optional fields.
func Float64(v float64) *float64 { return &v }
