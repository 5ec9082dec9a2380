package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const stripeAPIBase = "https://api.stripe.com"

// StripeClient talks to the Stripe checkout-sessions REST API directly:
// form-encoded requests, bearer-key auth. No request timeout is set beyond
// the transport default and no call is ever retried, because session
// creation is not idempotent on the provider side.
type StripeClient struct {
	BaseURL string
	Client  *http.Client

	key string
}

var _ Client = (*StripeClient)(nil)

func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{
		BaseURL: stripeAPIBase,
		Client:  &http.Client{},
		key:     secretKey,
	}
}

func (c *StripeClient) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[]", "card")
	form.Set("success_url", p.SuccessURL)
	form.Set("cancel_url", p.CancelURL)

	for i, li := range p.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", li.Currency)
		form.Set(prefix+"[price_data][product_data][name]", li.Name)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(li.UnitAmountCents, 10))
		form.Set(prefix+"[quantity]", strconv.Itoa(li.Quantity))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return CheckoutSession{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req)
}

func (c *StripeClient) RetrieveCheckoutSession(ctx context.Context, id string) (CheckoutSession, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"/v1/checkout/sessions/"+url.PathEscape(id), nil)
	if err != nil {
		return CheckoutSession{}, err
	}

	return c.do(req)
}

func (c *StripeClient) do(req *http.Request) (CheckoutSession, error) {
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.Client.Do(req)
	if err != nil {
		return CheckoutSession{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return CheckoutSession{}, decodeError(resp)
	}

	var cs CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&cs); err != nil {
		return CheckoutSession{}, fmt.Errorf("decode checkout session: %w", err)
	}
	return cs, nil
}

func decodeError(resp *http.Response) error {
	var body struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}

	msg := "provider error"
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error.Message != "" {
		msg = body.Error.Message
	}

	return &ProviderError{StatusCode: resp.StatusCode, Message: msg}
}
