// Package shop composes the catalog, cart, and checkout surfaces into the
// single public HTTP handler.
package shop

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gargchanchal/TEST-ECO/internal/cart"
	"github.com/gargchanchal/TEST-ECO/internal/catalog"
	"github.com/gargchanchal/TEST-ECO/internal/checkout"
	"github.com/gargchanchal/TEST-ECO/internal/payment"
	"github.com/gargchanchal/TEST-ECO/internal/session"
	"github.com/gargchanchal/TEST-ECO/pkg/kit"
)

type Deps struct {
	Catalog  catalog.Store
	Sessions *session.Store
	Carts    *cart.Store
	Cookies  *session.CookieCodec
	Payments payment.Client // nil disables checkout

	BaseURL       string
	SecureCookies bool

	CheckoutLimitPerMin int
}

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

const limitWindow = 60 * time.Second

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	catalogSrv := &catalog.Server{Store: deps.Catalog, Log: httpDeps.Log}
	cartSrv := &cart.Server{Catalog: deps.Catalog, Carts: deps.Carts, Log: httpDeps.Log}
	checkoutSrv := &checkout.Server{
		Carts:    deps.Carts,
		Payments: deps.Payments,
		BaseURL:  deps.BaseURL,
		Log:      httpDeps.Log,
	}

	r := chi.NewRouter()
	setupMiddleware(r, httpDeps)
	setupMetrics(r, httpDeps)

	r.Get("/health", health)
	r.Mount("/products", catalogSrv.Routes())

	sessionMW := session.Middleware(deps.Sessions, deps.Cookies, deps.SecureCookies, httpDeps.Log)
	checkoutLimiter := kit.NewIPRateLimiter(deps.CheckoutLimitPerMin, int(limitWindow.Seconds()))

	r.Group(func(pr chi.Router) {
		pr.Use(sessionMW)
		pr.Mount("/cart", cartSrv.Routes())
		pr.With(checkoutLimiter.Middleware).Post("/checkout", checkoutSrv.Checkout)
		pr.Get("/success", checkoutSrv.Success)
		pr.Get("/cancel", checkoutSrv.Cancel)
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func health(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
