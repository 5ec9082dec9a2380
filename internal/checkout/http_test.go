package checkout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gargchanchal/TEST-ECO/internal/cart"
	"github.com/gargchanchal/TEST-ECO/internal/catalog"
	"github.com/gargchanchal/TEST-ECO/internal/checkout"
	"github.com/gargchanchal/TEST-ECO/internal/payment"
	"github.com/gargchanchal/TEST-ECO/internal/session"
)

type fakeProvider struct {
	createCalls   int
	retrieveCalls int

	createFn   func(payment.CheckoutParams) (payment.CheckoutSession, error)
	retrieveFn func(string) (payment.CheckoutSession, error)
}

func (f *fakeProvider) CreateCheckoutSession(_ context.Context, p payment.CheckoutParams) (payment.CheckoutSession, error) {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(p)
	}
	return payment.CheckoutSession{ID: "cs_fake", URL: "https://pay.example.com/cs_fake"}, nil
}

func (f *fakeProvider) RetrieveCheckoutSession(_ context.Context, id string) (payment.CheckoutSession, error) {
	f.retrieveCalls++
	if f.retrieveFn != nil {
		return f.retrieveFn(id)
	}
	return payment.CheckoutSession{ID: id, Status: "complete", PaymentStatus: "paid"}, nil
}

func withSession(r *http.Request, sess session.Session) *http.Request {
	return r.WithContext(session.ContextWith(r.Context(), sess))
}

func newServer(payments payment.Client) (*checkout.Server, *cart.Store, session.Session) {
	carts := cart.NewStore(session.TTL)
	sess := session.Session{ID: "s_test", ExpiresAt: time.Now().Add(session.TTL)}

	return &checkout.Server{
		Carts:    carts,
		Payments: payments,
		BaseURL:  "http://localhost:4242",
		Log:      zap.NewNop(),
	}, carts, sess
}

func seedCart(carts *cart.Store, sessID string) {
	p := catalog.SeedProducts()[0]
	c := carts.GetOrCreate(sessID)
	c.Add(p, 2)
	carts.Save(sessID, c)
}

func TestCheckout_EmptyCartRedirectsWithoutProviderCall(t *testing.T) {
	provider := &fakeProvider{}
	srv, _, sess := newServer(provider)

	rec := httptest.NewRecorder()
	srv.Checkout(rec, withSession(httptest.NewRequest(http.MethodPost, "/checkout", nil), sess))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cart", rec.Header().Get("Location"))
	assert.Zero(t, provider.createCalls)
}

func TestCheckout_UnconfiguredProviderIs500(t *testing.T) {
	srv, carts, sess := newServer(nil)
	seedCart(carts, sess.ID)

	rec := httptest.NewRecorder()
	srv.Checkout(rec, withSession(httptest.NewRequest(http.MethodPost, "/checkout", nil), sess))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCheckout_RedirectsToProviderURL(t *testing.T) {
	provider := &fakeProvider{
		createFn: func(p payment.CheckoutParams) (payment.CheckoutSession, error) {
			require.Len(t, p.LineItems, 1)
			assert.Equal(t, "Aurora Headphones", p.LineItems[0].Name)
			assert.Equal(t, "usd", p.LineItems[0].Currency)
			assert.Equal(t, int64(12999), p.LineItems[0].UnitAmountCents)
			assert.Equal(t, 2, p.LineItems[0].Quantity)
			assert.Equal(t, "http://localhost:4242/success?session_id={CHECKOUT_SESSION_ID}", p.SuccessURL)
			assert.Equal(t, "http://localhost:4242/cancel", p.CancelURL)
			return payment.CheckoutSession{ID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil
		},
	}
	srv, carts, sess := newServer(provider)
	seedCart(carts, sess.ID)

	rec := httptest.NewRecorder()
	srv.Checkout(rec, withSession(httptest.NewRequest(http.MethodPost, "/checkout", nil), sess))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://pay.example.com/cs_1", rec.Header().Get("Location"))
	assert.Equal(t, 1, provider.createCalls)
}

func TestCheckout_ProviderFailureIs500WithoutRetry(t *testing.T) {
	provider := &fakeProvider{
		createFn: func(payment.CheckoutParams) (payment.CheckoutSession, error) {
			return payment.CheckoutSession{}, &payment.ProviderError{StatusCode: 502, Message: "upstream"}
		},
	}
	srv, carts, sess := newServer(provider)
	seedCart(carts, sess.ID)

	rec := httptest.NewRecorder()
	srv.Checkout(rec, withSession(httptest.NewRequest(http.MethodPost, "/checkout", nil), sess))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, provider.createCalls, "exactly one attempt")

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body.Error, "upstream", "provider detail stays server-side")
}

func TestSuccess_WithoutSessionIDDegrades(t *testing.T) {
	provider := &fakeProvider{}
	srv, _, _ := newServer(provider)

	rec := httptest.NewRecorder()
	srv.Success(rec, httptest.NewRequest(http.MethodGet, "/success", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"session": null}`, rec.Body.String())
	assert.Zero(t, provider.retrieveCalls)
}

func TestSuccess_UnconfiguredProviderDegrades(t *testing.T) {
	srv, _, _ := newServer(nil)

	rec := httptest.NewRecorder()
	srv.Success(rec, httptest.NewRequest(http.MethodGet, "/success?session_id=cs_1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"session": null}`, rec.Body.String())
}

func TestSuccess_RendersRetrievedSession(t *testing.T) {
	provider := &fakeProvider{}
	srv, _, _ := newServer(provider)

	rec := httptest.NewRecorder()
	srv.Success(rec, httptest.NewRequest(http.MethodGet, "/success?session_id=cs_42", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Session *payment.CheckoutSession `json:"session"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Session)
	assert.Equal(t, "cs_42", body.Session.ID)
	assert.Equal(t, "paid", body.Session.PaymentStatus)
}

func TestSuccess_RetrieveFailureIs500(t *testing.T) {
	provider := &fakeProvider{
		retrieveFn: func(string) (payment.CheckoutSession, error) {
			return payment.CheckoutSession{}, &payment.ProviderError{StatusCode: 404, Message: "No such checkout session"}
		},
	}
	srv, _, _ := newServer(provider)

	rec := httptest.NewRecorder()
	srv.Success(rec, httptest.NewRequest(http.MethodGet, "/success?session_id=cs_gone", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCancel(t *testing.T) {
	srv, _, _ := newServer(nil)

	rec := httptest.NewRecorder()
	srv.Cancel(rec, httptest.NewRequest(http.MethodGet, "/cancel", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "cancelled"}`, rec.Body.String())
}
