// Package stripe provides the HTTP core shared by the typed Stripe API
// bindings: request encoding, authentication headers, idempotency keys,
// retries, and error decoding.
package stripe

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ledgerworks/stripe-client/pkg/rate"
	"github.com/ledgerworks/stripe-client/pkg/retry"
	"github.com/ledgerworks/stripe-client/pkg/retry/backoff"
	"github.com/ledgerworks/stripe-client/pkg/stripe/form"
)

const (
	defaultBaseURL    = "https://api.stripe.com/v1"
	defaultAPIVersion = "2022-11-15"
	clientUserAgent   = "ledgerworks/stripe-client"
)

// ErrRateLimited is returned when the local limiter rejects a call before it
// reaches the network.
var ErrRateLimited = errors.New("local rate limit exceeded")

// Backend issues requests against the Stripe API. GET calls encode parameters
// into the query string, every other verb into a form-encoded body. The
// decoded JSON response is written into v when v is non-nil.
type Backend interface {
	Call(ctx context.Context, method, path string, params interface{}, v interface{}, opts ...CallOption) error
}

// CallOption customizes a single request.
type CallOption func(*callOptions)

type callOptions struct {
	idempotencyKey string
	stripeAccount  string
}

// WithIdempotencyKey sets the Idempotency-Key header for one call. Mutating
// calls without an explicit key get a generated one.
func WithIdempotencyKey(key string) CallOption {
	return func(o *callOptions) {
		o.idempotencyKey = key
	}
}

// WithStripeAccountHeader overrides the connected account for one call.
func WithStripeAccountHeader(account string) CallOption {
	return func(o *callOptions) {
		o.stripeAccount = account
	}
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL points the client at a different API host, typically a test
// server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithAPIVersion pins the Stripe-Version header.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithStripeAccount acts on behalf of a connected account for every call.
func WithStripeAccount(account string) Option {
	return func(c *Client) {
		c.stripeAccount = account
	}
}

// WithLogger replaces the default logger.
func WithLogger(log *logrus.Entry) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithRateLimiter installs a local limiter keyed by endpoint path.
func WithRateLimiter(limiter rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// WithMaxRetries bounds the number of attempts per call. Zero disables
// retries entirely.
func WithMaxRetries(maxRetries uint) Option {
	return func(c *Client) {
		c.maxAttempts = maxRetries + 1
	}
}

// Client is the default Backend over net/http.
type Client struct {
	apiKey        string
	baseURL       string
	apiVersion    string
	stripeAccount string
	maxAttempts   uint

	httpClient *http.Client
	limiter    rate.Limiter
	log        *logrus.Entry
}

// New returns a Client authenticated with the provided secret key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:      apiKey,
		baseURL:     defaultBaseURL,
		apiVersion:  defaultAPIVersion,
		maxAttempts: 3,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: &rate.NoLimiter{},
		log:     logrus.StandardLogger().WithField("type", "stripe/client"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Call implements Backend.Call.
func (c *Client) Call(ctx context.Context, method, path string, params interface{}, v interface{}, opts ...CallOption) error {
	var callOpts callOptions
	for _, opt := range opts {
		opt(&callOpts)
	}

	allowed, err := c.limiter.Allow(path)
	if err != nil {
		return errors.Wrap(err, "failed to check rate limit")
	}
	if !allowed {
		return ErrRateLimited
	}

	values, err := form.Encode(params)
	if err != nil {
		return errors.Wrap(err, "failed to encode parameters")
	}
	encoded := values.Encode()

	url := c.baseURL + path
	var body string
	if method == http.MethodGet {
		if encoded != "" {
			url += "?" + encoded
		}
	} else {
		body = encoded
	}

	if callOpts.idempotencyKey == "" && method == http.MethodPost {
		callOpts.idempotencyKey = uuid.New().String()
	}

	log := c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
	})

	retrier := retry.NewRetrier(
		retry.NonRetriableErrors(context.Canceled, context.DeadlineExceeded),
		c.apiErrorStrategy(),
		retry.Limit(c.maxAttempts),
		retry.BackoffWithJitter(backoff.BinaryExponential(250*time.Millisecond), 5*time.Second, 0.1),
	)

	var respBody []byte
	attempts, err := retrier.Retry(func() error {
		var attemptErr error
		respBody, attemptErr = c.do(ctx, method, url, body, &callOpts)
		return attemptErr
	})
	if err != nil {
		log.WithError(err).WithField("attempts", attempts).Debug("request failed")
		return err
	}

	log.Trace("request succeeded")

	if v == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, v); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}

// apiErrorStrategy stops retrying on terminal API errors while leaving
// transport failures retriable.
func (c *Client) apiErrorStrategy() retry.Strategy {
	return func(attempts uint, err error) bool {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return apiErr.shouldRetry()
		}
		return true
	}
}

func (c *Client) do(ctx context.Context, method, url, body string, callOpts *callOptions) ([]byte, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Stripe-Version", c.apiVersion)
	req.Header.Set("User-Agent", clientUserAgent)
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if callOpts.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", callOpts.idempotencyKey)
	}

	stripeAccount := c.stripeAccount
	if callOpts.stripeAccount != "" {
		stripeAccount = callOpts.stripeAccount
	}
	if stripeAccount != "" {
		req.Header.Set("Stripe-Account", stripeAccount)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to make request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode >= 400 {
		return nil, decodeError(resp, respBody)
	}

	return respBody, nil
}

func decodeError(resp *http.Response, body []byte) error {
	var envelope struct {
		Error *Error `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return errors.Errorf("received non-2xx status code: %d", resp.StatusCode)
	}

	envelope.Error.StatusCode = resp.StatusCode
	envelope.Error.RequestID = resp.Header.Get("Request-Id")
	return envelope.Error
}
