package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every runtime setting of the API and the worker.
//
// Store connection parameters (region, endpoint, tables) are static
// configuration; the admin secret is the only credential the app itself checks.
type Config struct {
	Env        string
	ServerPort string

	AdminPassword           string
	AdminJWTSecret          string
	AdminSessionTTL         time.Duration
	AdminLoginRatePerMinute int
	StoreTimeout            time.Duration
	ShopTimezone            string
	ShopPhoneRegion         string
	ChatReplyDelay          time.Duration
	ChatSessionIdleTTL      time.Duration
	ChatMaxSessions         int
	ChatStartRatePerMinute  int
	CORSOrigins             []string

	AWSRegion            string
	AWSAccessKeyID       string
	AWSSecretAccessKey   string
	DynamoDBEndpoint     string
	QuotesTable          string
	AppointmentsTable    string
	DynamoDBCreateTables bool

	RedisURL      string
	NotifyEmailTo string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPFrom      string
}

func Load() *Config {
	return &Config{
		Env:        getEnv("APP_ENV", "production"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		AdminPassword:           os.Getenv("ADMIN_PASSWORD"),
		AdminJWTSecret:          os.Getenv("ADMIN_JWT_SECRET"),
		AdminSessionTTL:         getDuration("ADMIN_SESSION_TTL", 12*time.Hour),
		AdminLoginRatePerMinute: getInt("ADMIN_LOGIN_RATE_PER_MINUTE", 5),
		StoreTimeout:            getDuration("STORE_TIMEOUT", 10*time.Second),
		ShopTimezone:            getEnv("SHOP_TIMEZONE", "America/New_York"),
		ShopPhoneRegion:         getEnv("SHOP_PHONE_REGION", "US"),
		ChatReplyDelay:          getDuration("CHAT_REPLY_DELAY", 1500*time.Millisecond),
		ChatSessionIdleTTL:      getDuration("CHAT_SESSION_IDLE_TTL", 24*time.Hour),
		ChatMaxSessions:         getInt("CHAT_MAX_SESSIONS", 10000),
		ChatStartRatePerMinute:  getInt("CHAT_START_RATE_PER_MINUTE", 10),
		CORSOrigins:             getList("CORS_ORIGINS", []string{"*"}),

		AWSRegion:            getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:       getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey:   getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:     os.Getenv("DYNAMODB_ENDPOINT"),
		QuotesTable:          getEnv("QUOTES_TABLE", "quotes"),
		AppointmentsTable:    getEnv("APPOINTMENTS_TABLE", "appointments"),
		DynamoDBCreateTables: getBool("DYNAMODB_CREATE_TABLES", false),

		RedisURL:      os.Getenv("REDIS_URL"),
		NotifyEmailTo: os.Getenv("NOTIFY_EMAIL_TO"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getInt("SMTP_PORT", 587),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:      getEnv("SMTP_FROM", "no-reply@gadgetgarage.local"),
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// NotificationsEnabled reports whether new submissions are queued for the worker.
func (c *Config) NotificationsEnabled() bool {
	return c.RedisURL != ""
}

// MailEnabled reports whether the worker can deliver notification emails.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.NotifyEmailTo != ""
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func getList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	out := make([]string, 0)
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
