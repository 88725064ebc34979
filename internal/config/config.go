package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	NotifySimulated = "simulated"
	NotifySMTP      = "smtp"
	NotifyRabbitMQ  = "rabbitmq"
)

type RabbitMQConfig struct {
	User     string
	Password string
	Host     string
	Port     string
}

type WhatsAppConfig struct {
	AccessToken string
	PhoneID     string
	BaseURL     string
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Config centraliza a configuração vinda do ambiente.
type Config struct {
	Port   string
	AppEnv string

	AdminPassword string
	SessionSecret string
	SessionTTL    time.Duration

	CORSOrigins []string

	NotifyDriver string
	NotifyDelay  time.Duration
	RabbitMQ     RabbitMQConfig
	Mail         MailConfig
	WhatsApp     WhatsAppConfig

	CalendarInviteEmail string
	SeedMockData        bool
	StaleLeadAfter      time.Duration
}

// Load lê as variáveis de ambiente. Só valores malformados dão erro; tudo que
// falta cai no padrão de desenvolvimento.
func Load() (*Config, error) {
	var errs []string

	duration := func(key, def string) time.Duration {
		raw := getEnvOrDefault(key, def)
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			errs = append(errs, fmt.Sprintf("%s: invalid duration %q", key, raw))
		}
		return d
	}

	mailPort, err := strconv.Atoi(getEnvOrDefault("MAIL_PORT", "587"))
	if err != nil {
		errs = append(errs, "MAIL_PORT: must be a number")
	}

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		AppEnv:        getEnvOrDefault("APP_ENV", "development"),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", "admin"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    duration("SESSION_TTL", "12h"),
		CORSOrigins:   splitList(getEnvOrDefault("CORS_ORIGINS", "http://localhost:5173")),
		NotifyDriver:  strings.ToLower(getEnvOrDefault("NOTIFY_DRIVER", NotifySimulated)),
		NotifyDelay:   duration("NOTIFY_DELAY", "800ms"),
		RabbitMQ: RabbitMQConfig{
			User:     getEnvOrDefault("RABBITMQ_USER", "guest"),
			Password: getEnvOrDefault("RABBITMQ_PASS", "guest"),
			Host:     getEnvOrDefault("RABBITMQ_HOST", "localhost"),
			Port:     getEnvOrDefault("RABBITMQ_PORT", "5672"),
		},
		Mail: MailConfig{
			Host:     os.Getenv("MAIL_HOST"),
			Port:     mailPort,
			User:     os.Getenv("MAIL_USER"),
			Password: os.Getenv("MAIL_PASS"),
			From:     getEnvOrDefault("MAIL_FROM", "hello@ethiocodes.et"),
		},
		WhatsApp: WhatsAppConfig{
			AccessToken: os.Getenv("WHATSAPP_ACCESS_TOKEN"),
			PhoneID:     os.Getenv("WHATSAPP_PHONE_ID"),
			BaseURL:     os.Getenv("WHATSAPP_BASE_URL"),
		},
		CalendarInviteEmail: os.Getenv("CALENDAR_INVITE_EMAIL"),
		SeedMockData:        parseBoolEnv(getEnvOrDefault("SEED_MOCK_DATA", "true")),
		StaleLeadAfter:      duration("STALE_LEAD_AFTER", "48h"),
	}

	switch cfg.NotifyDriver {
	case NotifySimulated, NotifySMTP, NotifyRabbitMQ:
	default:
		errs = append(errs, fmt.Sprintf("NOTIFY_DRIVER: unknown driver %q", cfg.NotifyDriver))
	}
	if cfg.NotifyDriver != NotifySimulated && cfg.Mail.Host == "" {
		errs = append(errs, "MAIL_HOST: required when NOTIFY_DRIVER is smtp or rabbitmq")
	}
	if cfg.SessionTTL == 0 {
		errs = append(errs, "SESSION_TTL: must be positive")
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	if cfg.SessionSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
		cfg.SessionSecret = secret
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnvOrDefault(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func parseBoolEnv(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// randomSecret vale só para o processo atual: sessões não sobrevivem a um
// restart sem SESSION_SECRET.
func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
