package stripe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerworks/stripe-client/pkg/rate"
)

func TestClient_Headers(t *testing.T) {
	var captured http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := New(
		"sk_test_123",
		WithBaseURL(server.URL),
		WithAPIVersion("2022-11-15"),
		WithStripeAccount("acct_1"),
	)

	require.NoError(t, client.Call(context.Background(), http.MethodPost, "/payment_intents", nil, nil))

	assert.Equal(t, "Bearer sk_test_123", captured.Get("Authorization"))
	assert.Equal(t, "2022-11-15", captured.Get("Stripe-Version"))
	assert.Equal(t, "ledgerworks/stripe-client", captured.Get("User-Agent"))
	assert.Equal(t, "acct_1", captured.Get("Stripe-Account"))
	assert.NotEmpty(t, captured.Get("Idempotency-Key"))
}

func TestClient_NilParams(t *testing.T) {
	var gotBody []byte
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := New("sk_test_123", WithBaseURL(server.URL))

	// nil params must encode to an empty body, not fail before the request.
	require.NoError(t, client.Call(context.Background(), http.MethodPost, "/payment_intents", nil, nil))
	assert.Empty(t, gotBody)

	require.NoError(t, client.Call(context.Background(), http.MethodGet, "/payment_intents", nil, nil))
	assert.Empty(t, gotQuery)
}

func TestClient_CallOptionsOverrideHeaders(t *testing.T) {
	var captured http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := New("sk_test_123", WithBaseURL(server.URL), WithStripeAccount("acct_1"))

	err := client.Call(
		context.Background(),
		http.MethodPost,
		"/payment_intents",
		nil,
		nil,
		WithIdempotencyKey("key_abc"),
		WithStripeAccountHeader("acct_2"),
	)
	require.NoError(t, err)

	assert.Equal(t, "key_abc", captured.Get("Idempotency-Key"))
	assert.Equal(t, "acct_2", captured.Get("Stripe-Account"))
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var attempts int64
	var keys []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get("Idempotency-Key"))
		if atomic.AddInt64(&attempts, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error": {"type": "api_error", "message": "boom"}}`)
			return
		}
		fmt.Fprint(w, `{"id": "pi_1"}`)
	}))
	defer server.Close()

	client := New("sk_test_123", WithBaseURL(server.URL), WithMaxRetries(2))

	var result struct {
		ID string `json:"id"`
	}
	require.NoError(t, client.Call(context.Background(), http.MethodPost, "/payment_intents", nil, &result))

	assert.Equal(t, "pi_1", result.ID)
	assert.EqualValues(t, 2, attempts)

	// Retries replay the same idempotency key.
	require.Len(t, keys, 2)
	assert.Equal(t, keys[0], keys[1])
}

func TestClient_DoesNotRetryTerminalErrors(t *testing.T) {
	var attempts int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&attempts, 1)
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"type": "invalid_request_error", "message": "amount must be positive", "param": "amount"}}`)
	}))
	defer server.Close()

	client := New("sk_test_123", WithBaseURL(server.URL), WithMaxRetries(3))

	err := client.Call(context.Background(), http.MethodPost, "/payment_intents", nil, nil)
	require.Error(t, err)
	assert.EqualValues(t, 1, attempts)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrorTypeInvalidRequest, apiErr.Type)
	assert.Equal(t, "amount", apiErr.Param)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestClient_RetriesLockContention(t *testing.T) {
	var attempts int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&attempts, 1) == 1 {
			w.WriteHeader(http.StatusConflict)
			fmt.Fprint(w, `{"error": {"type": "invalid_request_error", "code": "lock_timeout", "message": "try again"}}`)
			return
		}
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := New("sk_test_123", WithBaseURL(server.URL), WithMaxRetries(2))

	require.NoError(t, client.Call(context.Background(), http.MethodPost, "/payment_intents", nil, nil))
	assert.EqualValues(t, 2, attempts)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "<html>bad gateway</html>")
	}))
	defer server.Close()

	client := New("sk_test_123", WithBaseURL(server.URL), WithMaxRetries(0))

	err := client.Call(context.Background(), http.MethodGet, "/payment_intents", nil, nil)
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "502")
}

func TestClient_LocalRateLimit(t *testing.T) {
	var attempts int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&attempts, 1)
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := New(
		"sk_test_123",
		WithBaseURL(server.URL),
		WithRateLimiter(rate.NewLocalRateLimiter(1)),
	)

	require.NoError(t, client.Call(context.Background(), http.MethodGet, "/payment_intents", nil, nil))

	err := client.Call(context.Background(), http.MethodGet, "/payment_intents", nil, nil)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.EqualValues(t, 1, attempts)
}

func TestClient_ContextCancellationIsNotRetried(t *testing.T) {
	var attempts int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&attempts, 1)
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New("sk_test_123", WithBaseURL(server.URL), WithMaxRetries(3))

	err := client.Call(ctx, http.MethodGet, "/payment_intents", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, attempts)
}
