// Package checkout drives the hosted-payment-page flow: it turns the
// session's cart into one provider checkout session and redirects there.
package checkout

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/gargchanchal/TEST-ECO/internal/cart"
	"github.com/gargchanchal/TEST-ECO/internal/payment"
	"github.com/gargchanchal/TEST-ECO/internal/session"
	"github.com/gargchanchal/TEST-ECO/pkg/kit"
)

type Server struct {
	Carts    *cart.Store
	Payments payment.Client // nil when the provider credential is absent
	BaseURL  string
	Log      *zap.Logger
}

// successView mirrors the post-payment confirmation screen: Session is nil
// when there is nothing to show, which is a degraded view, not an error.
type successView struct {
	Session *payment.CheckoutSession `json:"session"`
}

func (s *Server) Checkout(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusInternalServerError, "no session", nil)
		return
	}

	c := s.Carts.GetOrCreate(sess.ID)
	c.Recalc()

	// An empty cart never reaches the provider.
	if len(c.Items) == 0 {
		kit.SeeOther(w, r, "/cart")
		return
	}

	if s.Payments == nil {
		kit.WriteError(w, r, http.StatusInternalServerError,
			"payment provider is not configured, set STRIPE_SECRET_KEY", nil)
		return
	}

	items := make([]payment.LineItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, payment.LineItem{
			Name:            it.Product.Name,
			Currency:        it.Product.Currency,
			UnitAmountCents: it.Product.PriceCents,
			Quantity:        it.Quantity,
		})
	}

	// One best-effort attempt: creating a checkout session has provider-side
	// effects, so a failed call surfaces as an error instead of retrying.
	cs, err := s.Payments.CreateCheckoutSession(r.Context(), payment.CheckoutParams{
		LineItems:  items,
		SuccessURL: s.BaseURL + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.BaseURL + "/cancel",
	})
	if err != nil {
		if s.Log != nil {
			s.Log.Error("create checkout session failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "checkout failed", nil)
		return
	}

	kit.SeeOther(w, r, cs.URL)
}

func (s *Server) Success(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session_id")
	if s.Payments == nil || id == "" {
		kit.WriteJSON(w, http.StatusOK, successView{})
		return
	}

	cs, err := s.Payments.RetrieveCheckoutSession(r.Context(), id)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("retrieve checkout session failed", zap.Error(err), zap.String("session_id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, successView{Session: &cs})
}

func (s *Server) Cancel(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}
