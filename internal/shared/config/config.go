package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration. It is loaded once at process start
// and injected into the components that need it; nothing re-reads the
// environment per request.
type Config struct {
	Server    ServerConfig
	SMTP      SMTPConfig
	Contact   ContactConfig
	Lead      LeadConfig
	Assets    AssetConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// SMTPConfig holds outbound mail transport configuration
type SMTPConfig struct {
	Host          string `env:"SMTP_HOST"`
	Port          int    `env:"SMTP_PORT" envDefault:"587"`
	User          string `env:"SMTP_USER"`
	Pass          string `env:"SMTP_PASS"`
	ProbeSchedule string `env:"SMTP_PROBE_SCHEDULE" envDefault:"@every 5m"`
}

// Configured reports whether the transport has everything it needs to send
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.User != "" && c.Pass != ""
}

// ImplicitTLS reports whether the configured port requires a TLS connection
// from the first byte (SMTPS) rather than a STARTTLS upgrade
func (c SMTPConfig) ImplicitTLS() bool {
	return c.Port == 465
}

// Addr returns the host:port dial address for the transport
func (c SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ContactConfig holds routing for the contact-form relay
type ContactConfig struct {
	To   string `env:"CONTACT_TO" envDefault:"marko@ssap.io"`
	From string `env:"CONTACT_FROM"`
}

// LeadConfig holds routing for the PDF lead notification
type LeadConfig struct {
	To         string `env:"LEADS_TO"`
	FallbackTo string `env:"SMTP_TO"`
	From       string `env:"SMTP_FROM"`
}

// AssetConfig locates the downloadable assets on local disk. File names are
// fixed here per endpoint and never derived from request input.
type AssetConfig struct {
	Dir      string `env:"ASSET_DIR" envDefault:"public/pdfs"`
	PilotPDF string `env:"PILOT_PDF_NAME" envDefault:"SSAP-Technical-Overview.pdf"`
}

// RateLimitConfig holds per-client request throttling settings
type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	Burst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// ContactFrom resolves the sender address for contact relay messages
func (c *Config) ContactFrom() string {
	if c.Contact.From != "" {
		return c.Contact.From
	}
	if c.SMTP.User != "" {
		return c.SMTP.User
	}
	return "no-reply@ssap.io"
}

// LeadTo resolves the recipient for lead notifications
func (c *Config) LeadTo() string {
	if c.Lead.To != "" {
		return c.Lead.To
	}
	if c.Lead.FallbackTo != "" {
		return c.Lead.FallbackTo
	}
	return "marko@ssap.io"
}

// LeadFrom resolves the sender address for lead notifications
func (c *Config) LeadFrom() string {
	if c.Lead.From != "" {
		return c.Lead.From
	}
	if c.SMTP.User != "" {
		return c.SMTP.User
	}
	return "marko@ssap.io"
}

// LoadConfig loads configuration from the environment, reading an optional
// .env file first
func LoadConfig() (*Config, error) {
	// The .env file is optional; a missing one is not an error.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
