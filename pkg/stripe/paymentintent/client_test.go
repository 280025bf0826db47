package paymentintent

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerworks/stripe-client/pkg/pointer"
	"github.com/ledgerworks/stripe-client/pkg/stripe"
)

type recordedRequest struct {
	method string
	path   string
	query  url.Values
	body   url.Values
	header http.Header
}

type testEnv struct {
	client   *Client
	server   *httptest.Server
	requests []recordedRequest

	// respond is swapped per test case before each call.
	respond func(w http.ResponseWriter, r *http.Request)
}

func newTestEnv(t *testing.T) *testEnv {
	env := &testEnv{}
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		body, err := url.ParseQuery(string(raw))
		assert.NoError(t, err)

		env.requests = append(env.requests, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			body:   body,
			header: r.Header.Clone(),
		})
		env.respond(w, r)
	}))
	t.Cleanup(env.server.Close)

	backend := stripe.New(
		"sk_test_123",
		stripe.WithBaseURL(env.server.URL),
		stripe.WithMaxRetries(0),
	)
	env.client = NewClient(backend)
	return env
}

func (env *testEnv) respondIntent(id string, status Status) {
	env.respond = func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id": %q, "object": "payment_intent", "amount": 2000, "currency": "usd", "status": %q}`, id, status)
	}
}

func (env *testEnv) lastRequest(t *testing.T) recordedRequest {
	require.NotEmpty(t, env.requests)
	return env.requests[len(env.requests)-1]
}

func TestClient_New(t *testing.T) {
	env := newTestEnv(t)
	env.respondIntent("pi_1", StatusRequiresPaymentMethod)

	intent, err := env.client.New(context.Background(), NewCreateParams(2000, "usd"))
	require.NoError(t, err)

	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, StatusRequiresPaymentMethod, intent.Status)
	assert.EqualValues(t, 2000, intent.Amount)

	req := env.lastRequest(t)
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/payment_intents", req.path)
	assert.Equal(t, "2000", req.body.Get("amount"))
	assert.Equal(t, "usd", req.body.Get("currency"))
	assert.Equal(t, "application/x-www-form-urlencoded", req.header.Get("Content-Type"))
	assert.NotEmpty(t, req.header.Get("Idempotency-Key"))
}

func TestClient_Get(t *testing.T) {
	env := newTestEnv(t)
	env.respondIntent("pi_1", StatusSucceeded)

	intent, err := env.client.Get(context.Background(), "pi_1", nil)
	require.NoError(t, err)
	assert.Equal(t, StatusSucceeded, intent.Status)

	req := env.lastRequest(t)
	assert.Equal(t, http.MethodGet, req.method)
	assert.Equal(t, "/payment_intents/pi_1", req.path)
	assert.Empty(t, req.query)
	// GET calls never carry an idempotency key.
	assert.Empty(t, req.header.Get("Idempotency-Key"))
}

func TestClient_GetWithClientSecret(t *testing.T) {
	env := newTestEnv(t)
	env.respondIntent("pi_1", StatusRequiresAction)

	params := NewRetrieveParams()
	params.ClientSecret = pointer.String("pi_1_secret_abc")

	_, err := env.client.Get(context.Background(), "pi_1", params)
	require.NoError(t, err)

	req := env.lastRequest(t)
	assert.Equal(t, "pi_1_secret_abc", req.query.Get("client_secret"))
}

func TestClient_Update(t *testing.T) {
	env := newTestEnv(t)
	env.respondIntent("pi_1", StatusRequiresPaymentMethod)

	params := NewUpdateParams()
	params.Amount = pointer.Int64(3000)
	params.Metadata = map[string]string{"order_id": "6735"}

	_, err := env.client.Update(context.Background(), "pi_1", params)
	require.NoError(t, err)

	req := env.lastRequest(t)
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/payment_intents/pi_1", req.path)
	assert.Equal(t, "3000", req.body.Get("amount"))
	assert.Equal(t, "6735", req.body.Get("metadata[order_id]"))
}

func TestClient_Confirm(t *testing.T) {
	env := newTestEnv(t)
	env.respondIntent("pi_1", StatusProcessing)

	params := NewConfirmParams()
	params.PaymentMethod = pointer.String("pm_123")
	params.MandateData = MandateDataFromSecretKey(NewMandateDataParams(CustomerAcceptanceParams{
		Type: CustomerAcceptanceTypeOffline,
	}))

	intent, err := env.client.Confirm(context.Background(), "pi_1", params)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, intent.Status)

	req := env.lastRequest(t)
	assert.Equal(t, "/payment_intents/pi_1/confirm", req.path)
	assert.Equal(t, "pm_123", req.body.Get("payment_method"))
	assert.Equal(t, "offline", req.body.Get("mandate_data[customer_acceptance][type]"))
}

func TestClient_Capture(t *testing.T) {
	env := newTestEnv(t)
	env.respondIntent("pi_1", StatusSucceeded)

	params := NewCaptureParams()
	params.AmountToCapture = pointer.Int64(500)

	_, err := env.client.Capture(context.Background(), "pi_1", params)
	require.NoError(t, err)

	req := env.lastRequest(t)
	assert.Equal(t, "/payment_intents/pi_1/capture", req.path)
	assert.Equal(t, "500", req.body.Get("amount_to_capture"))
}

func TestClient_Cancel(t *testing.T) {
	env := newTestEnv(t)
	env.respondIntent("pi_1", StatusCanceled)

	params := NewCancelParams()
	params.CancellationReason = cancellationReason(CancellationReasonDuplicate)

	intent, err := env.client.Cancel(context.Background(), "pi_1", params)
	require.NoError(t, err)
	assert.Equal(t, StatusCanceled, intent.Status)

	req := env.lastRequest(t)
	assert.Equal(t, "/payment_intents/pi_1/cancel", req.path)
	assert.Equal(t, "duplicate", req.body.Get("cancellation_reason"))
}

func TestClient_IncrementAuthorization(t *testing.T) {
	env := newTestEnv(t)
	env.respondIntent("pi_1", StatusRequiresCapture)

	_, err := env.client.IncrementAuthorization(context.Background(), "pi_1", NewIncrementAuthorizationParams(2500))
	require.NoError(t, err)

	req := env.lastRequest(t)
	assert.Equal(t, "/payment_intents/pi_1/increment_authorization", req.path)
	assert.Equal(t, "2500", req.body.Get("amount"))
}

func TestClient_VerifyMicrodeposits(t *testing.T) {
	env := newTestEnv(t)
	env.respondIntent("pi_1", StatusProcessing)

	params := NewVerifyMicrodepositsParams()
	params.Amounts = []int64{32, 45}

	_, err := env.client.VerifyMicrodeposits(context.Background(), "pi_1", params)
	require.NoError(t, err)

	req := env.lastRequest(t)
	assert.Equal(t, "/payment_intents/pi_1/verify_microdeposits", req.path)
	assert.Equal(t, "32", req.body.Get("amounts[0]"))
	assert.Equal(t, "45", req.body.Get("amounts[1]"))
}

func TestClient_ApplyCustomerBalance(t *testing.T) {
	env := newTestEnv(t)
	env.respondIntent("pi_1", StatusSucceeded)

	params := NewApplyCustomerBalanceParams()
	params.Amount = pointer.Int64(1000)

	_, err := env.client.ApplyCustomerBalance(context.Background(), "pi_1", params)
	require.NoError(t, err)

	req := env.lastRequest(t)
	assert.Equal(t, "/payment_intents/pi_1/apply_customer_balance", req.path)
	assert.Equal(t, "1000", req.body.Get("amount"))
}

func TestClient_List(t *testing.T) {
	env := newTestEnv(t)
	env.respond = func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"object": "list",
			"data": [
				{"id": "pi_1", "object": "payment_intent", "status": "succeeded"},
				{"id": "pi_2", "object": "payment_intent", "status": "canceled"}
			],
			"has_more": true,
			"url": "/v1/payment_intents"
		}`)
	}

	params := NewListParams()
	params.Customer = pointer.String("cus_x")
	params.Limit = pointer.Int64(25)

	page, err := env.client.List(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, page.Data, 2)
	assert.Equal(t, "pi_1", page.Data[0].ID)
	assert.Equal(t, StatusCanceled, page.Data[1].Status)
	assert.True(t, page.HasMore)

	req := env.lastRequest(t)
	assert.Equal(t, http.MethodGet, req.method)
	assert.Equal(t, "/payment_intents", req.path)
	assert.Equal(t, "cus_x", req.query.Get("customer"))
	assert.Equal(t, "25", req.query.Get("limit"))
}

func TestClient_Search(t *testing.T) {
	env := newTestEnv(t)
	env.respond = func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"object": "search_result",
			"data": [{"id": "pi_1", "object": "payment_intent", "status": "succeeded"}],
			"has_more": false,
			"url": "/v1/payment_intents/search"
		}`)
	}

	page, err := env.client.Search(context.Background(), NewSearchParams(`status:"succeeded"`))
	require.NoError(t, err)

	assert.Equal(t, SearchResultObjectSearchResult, page.Object)
	require.Len(t, page.Data, 1)
	assert.False(t, page.HasMore)
	// Both pagination hints may be absent from a response.
	assert.Nil(t, page.NextPage)
	assert.Nil(t, page.TotalCount)

	req := env.lastRequest(t)
	assert.Equal(t, "/payment_intents/search", req.path)
	assert.Equal(t, `status:"succeeded"`, req.query.Get("query"))
}

func TestClient_SearchWithNextPage(t *testing.T) {
	env := newTestEnv(t)
	env.respond = func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"object": "search_result",
			"data": [{"id": "pi_1", "object": "payment_intent", "status": "succeeded"}],
			"has_more": true,
			"next_page": "page_token",
			"total_count": 42,
			"url": "/v1/payment_intents/search"
		}`)
	}

	page, err := env.client.Search(context.Background(), NewSearchParams(`status:"succeeded"`))
	require.NoError(t, err)

	require.NotNil(t, page.NextPage)
	assert.Equal(t, "page_token", *page.NextPage)
	require.NotNil(t, page.TotalCount)
	assert.EqualValues(t, 42, *page.TotalCount)
}

func TestClient_UnknownStatusTokenSurvivesDecode(t *testing.T) {
	env := newTestEnv(t)
	env.respond = func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "pi_1", "object": "payment_intent", "status": "requires_teleportation"}`)
	}

	intent, err := env.client.Get(context.Background(), "pi_1", nil)
	require.NoError(t, err)

	// Unknown future tokens are carried through, not rejected.
	assert.Equal(t, Status("requires_teleportation"), intent.Status)
	_, parseErr := ParseStatus(intent.Status.String())
	assert.Error(t, parseErr)
}

func TestClient_APIError(t *testing.T) {
	env := newTestEnv(t)
	env.respond = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Request-Id", "req_123")
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{
			"error": {
				"type": "card_error",
				"code": "card_declined",
				"decline_code": "insufficient_funds",
				"message": "Your card has insufficient funds."
			}
		}`)
	}

	_, err := env.client.Confirm(context.Background(), "pi_1", NewConfirmParams())
	require.Error(t, err)

	var apiErr *stripe.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, stripe.ErrorTypeCard, apiErr.Type)
	assert.Equal(t, "card_declined", apiErr.Code)
	assert.Equal(t, "insufficient_funds", apiErr.DeclineCode)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
	assert.Equal(t, "req_123", apiErr.RequestID)
}
