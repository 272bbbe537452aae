package config

import (
	"fmt"
	"strings"
	"time"
)

// PaymentMethod is the payment rail used when initializing a payment.
type PaymentMethod string

const (
	// PaymentMethodCard pays by card.
	PaymentMethodCard PaymentMethod = "card"
	// PaymentMethodTransfer pays by bank transfer.
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// UnmarshalText implements encoding.TextUnmarshaler for PaymentMethod.
func (p *PaymentMethod) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "card", "transfer":
		*p = PaymentMethod(v)
		return nil
	default:
		return fmt.Errorf("invalid PaymentMethod: %q (valid options: card, transfer)", v)
	}
}

// APIConfig contains backend API configuration.
type APIConfig struct {
	// BaseURL is the backend origin, e.g. https://api.relay.example.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	// Timeout bounds each individual backend call. The reissue-and-replay
	// path makes at most three calls per logical operation.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`

	// PaymentMethod is the default method sent when initializing payments.
	PaymentMethod PaymentMethod `env:"PAYMENT_METHOD" envDefault:"card"`
}

// Sanitize applies guardrails to API configuration values.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.PaymentMethod == "" {
		c.PaymentMethod = PaymentMethodCard
	}
}
