package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from the environment once at startup and treated as
// immutable afterwards.
type Config struct {
	Port    string `envconfig:"PORT" default:"4242"`
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:4242"`

	// Absence of the key means checkout runs in unconfigured mode.
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`

	SessionSecret string `envconfig:"SESSION_SECRET" required:"true"`

	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	MetricsToken   string `envconfig:"METRICS_TOKEN"`

	CheckoutLimitPerMin int `envconfig:"CHECKOUT_LIMIT_PER_MIN" default:"10"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) StripeConfigured() bool {
	return c.StripeSecretKey != ""
}

func (c Config) SecureCookies() bool {
	return strings.HasPrefix(c.BaseURL, "https://")
}
