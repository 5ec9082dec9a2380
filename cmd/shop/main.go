package main

import (
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/gargchanchal/TEST-ECO/internal/cart"
	"github.com/gargchanchal/TEST-ECO/internal/catalog"
	"github.com/gargchanchal/TEST-ECO/internal/config"
	"github.com/gargchanchal/TEST-ECO/internal/payment"
	"github.com/gargchanchal/TEST-ECO/internal/session"
	"github.com/gargchanchal/TEST-ECO/internal/shop"
	"github.com/gargchanchal/TEST-ECO/pkg/kit"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	service := "shop"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config failed", zap.Error(err))
	}
	if len(cfg.SessionSecret) < 32 {
		log.Fatal("SESSION_SECRET must be at least 32 chars")
	}

	var payments payment.Client
	if cfg.StripeConfigured() {
		payments = payment.NewStripeClient(cfg.StripeSecretKey)
	} else {
		log.Warn("STRIPE_SECRET_KEY is not set, checkout is disabled")
	}

	deps := shop.Deps{
		Catalog:             catalog.NewMemStore(catalog.SeedProducts()),
		Sessions:            session.NewStore(),
		Carts:               cart.NewStore(session.TTL),
		Cookies:             session.NewCookieCodec(cfg.SessionSecret),
		Payments:            payments,
		BaseURL:             cfg.BaseURL,
		SecureCookies:       cfg.SecureCookies(),
		CheckoutLimitPerMin: cfg.CheckoutLimitPerMin,
	}

	reg := prometheus.NewRegistry()
	h := shop.NewHandler(deps, shop.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
