package harvest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryTransportRecovers(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "upstream hiccup", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	api := NewAPI("acme", "token123",
		WithBaseURL(srv.URL),
		WithHTTPClient(&http.Client{Transport: &RetryTransport{MaxRetries: 5, InitialInterval: time.Millisecond}}))

	tasks, err := api.GetTasks(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, 3, calls)
}

func TestRetryTransportExhaustionKeepsLastResponse(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "still down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	api := NewAPI("acme", "token123",
		WithBaseURL(srv.URL),
		WithHTTPClient(&http.Client{Transport: &RetryTransport{MaxRetries: 2, InitialInterval: time.Millisecond}}))

	_, err := api.GetTasks(context.Background(), nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "still down\n", apiErr.Body)
	assert.Equal(t, 3, calls) // initial attempt plus two retries
}

func TestRetryTransportSkipsWrites(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	api := NewAPI("acme", "token123",
		WithBaseURL(srv.URL),
		WithHTTPClient(&http.Client{Transport: &RetryTransport{MaxRetries: 5, InitialInterval: time.Millisecond}}))

	_, err := api.CreateTask(context.Background(), &TaskParams{Name: "QA"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 1, calls)
}

type failingTransport struct {
	calls int
}

func (f *failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	f.calls++
	return nil, errors.New("dial failed")
}

func TestRetryTransportNetworkErrors(t *testing.T) {
	base := &failingTransport{}
	rt := &RetryTransport{Base: base, MaxRetries: 2, InitialInterval: time.Millisecond}

	resp, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "http://acme.test/", nil))
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, 3, base.calls)
}

func TestRetryTransportHonorsContext(t *testing.T) {
	base := &failingTransport{}
	rt := &RetryTransport{Base: base, MaxRetries: 10, InitialInterval: time.Minute}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "http://acme.test/", nil).WithContext(ctx)

	_, err := rt.RoundTrip(req)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, base.calls)
}
