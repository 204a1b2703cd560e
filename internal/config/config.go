package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Portal holds configuration for the reset portal binary (cmd/web).
type Portal struct {
	Port            string
	AccountAPIURL   string
	LoginURL        string
	AllowOrigins    []string
	LogstashTCPAddr string
	SubmitTimeout   time.Duration
}

// API holds configuration for the account API binary (cmd/api).
type API struct {
	Port             string
	DatabaseURL      string
	ResetTokenSecret string
	ResetTokenTTL    time.Duration
	PortalBaseURL    string
	AllowOrigins     []string
	LogstashTCPAddr  string
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SMTPFrom         string
}

func LoadPortal() Portal {
	loadDotenv()

	return Portal{
		Port:            getenv("PORT", "8080"),
		AccountAPIURL:   must("ACCOUNT_API_URL"),
		LoginURL:        getenv("LOGIN_URL", "/"),
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),
		SubmitTimeout:   duration("SUBMIT_TIMEOUT", 10*time.Second),
	}
}

func LoadAPI() API {
	loadDotenv()

	return API{
		Port:             getenv("PORT", "8081"),
		DatabaseURL:      must("DATABASE_URL"),
		ResetTokenSecret: must("RESET_TOKEN_SECRET"),
		ResetTokenTTL:    duration("RESET_TOKEN_TTL", 15*time.Minute),
		PortalBaseURL:    getenv("PORTAL_BASE_URL", "http://localhost:8080"),
		AllowOrigins:     splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr:  getenv("LOGSTASH_TCP_ADDR", ""),
		SMTPHost:         getenv("SMTP_HOST", ""),
		SMTPPort:         getenv("SMTP_PORT", ""),
		SMTPUsername:     getenv("SMTP_USERNAME", ""),
		SMTPPassword:     getenv("SMTP_PASSWORD", ""),
		SMTPFrom:         getenv("SMTP_FROM", ""),
	}
}

func loadDotenv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
}

func duration(key string, fallback time.Duration) time.Duration {
	raw := getenv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s %q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
