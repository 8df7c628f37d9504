package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Booking BookingConfig
	Notify  NotifyConfig
	Auth    AuthConfig
	Jobs    JobsConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type StoreConfig struct {
	Path string
}

type BookingConfig struct {
	// ResetAfter is the observation window after a confirmed booking before
	// the workflow returns to a fresh draft.
	ResetAfter time.Duration
}

type NotifyConfig struct {
	// Channel selects the active delivery transport: "sendgrid", "smtp" or
	// "relay". Empty means no channel is configured and dispatch falls back
	// to the simulated outcome.
	Channel     string
	SenderName  string
	SenderEmail string

	SendGridAPIKey string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string

	RelayURL string

	SMSEnabled       bool
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

type AuthConfig struct {
	JWTSecret        string
	DemoEmail        string
	DemoName         string
	DemoPasswordHash string
}

type JobsConfig struct {
	Enabled               bool
	Schedule              string
	NotificationRetention time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           envOr("PORT", "8080"),
			AllowedOrigins: splitList(envOr("ALLOWED_ORIGINS", "*")),
		},
		Store: StoreConfig{
			Path: envOr("STORE_PATH", "data/parksmart.db"),
		},
		Booking: BookingConfig{
			ResetAfter: 5 * time.Second,
		},
		Notify: NotifyConfig{
			Channel:          strings.ToLower(os.Getenv("NOTIFY_CHANNEL")),
			SenderName:       envOr("NOTIFY_SENDER_NAME", "ParkSmart"),
			SenderEmail:      envOr("NOTIFY_SENDER_EMAIL", "noreply@parksmart.co.za"),
			SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
			SMTPHost:         os.Getenv("SMTP_HOST"),
			SMTPPort:         envOr("SMTP_PORT", "587"),
			SMTPUser:         os.Getenv("SMTP_USER"),
			SMTPPass:         os.Getenv("SMTP_PASS"),
			RelayURL:         os.Getenv("NOTIFY_RELAY_URL"),
			SMSEnabled:       envBool("SMS_ENABLED"),
			TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		},
		Auth: AuthConfig{
			JWTSecret:        os.Getenv("JWT_SECRET"),
			DemoEmail:        envOr("DEMO_EMAIL", "demo@parksmart.co.za"),
			DemoName:         envOr("DEMO_NAME", "Demo User"),
			DemoPasswordHash: os.Getenv("DEMO_PASSWORD_HASH"),
		},
		Jobs: JobsConfig{
			Enabled:               envBool("JOBS_ENABLED"),
			Schedule:              envOr("JOBS_SCHEDULE", "@every 10m"),
			NotificationRetention: 30 * 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  envOr("LOG_LEVEL", "info"),
			Format: envOr("LOG_FORMAT", "json"),
		},
	}

	if v := os.Getenv("BOOKING_RESET_AFTER"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BOOKING_RESET_AFTER: %w", err)
		}
		cfg.Booking.ResetAfter = d
	}
	if v := os.Getenv("NOTIFICATION_RETENTION_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid NOTIFICATION_RETENTION_DAYS: %w", err)
		}
		cfg.Jobs.NotificationRetention = time.Duration(days) * 24 * time.Hour
	}

	switch cfg.Notify.Channel {
	case "", "sendgrid", "smtp", "relay":
	default:
		return nil, fmt.Errorf("unknown NOTIFY_CHANNEL %q", cfg.Notify.Channel)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
