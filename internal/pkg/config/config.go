package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Salon    SalonConfig
	Redis    RedisConfig
	Twilio   TwilioConfig
	Reminder ReminderConfig
	Export   ExportConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition,X-Export-Key"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// SalonConfig holds the business settings of the shop itself.
// TimeZone decides every "same day" and "start hour" comparison.
type SalonConfig struct {
	TimeZone       string `envconfig:"SALON_TIMEZONE" default:"Asia/Seoul"`
	RulesFile      string `envconfig:"SALON_RULES_FILE" default:""`
	RejectOverlaps bool   `envconfig:"SALON_REJECT_OVERLAPS" default:"false"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"10m"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type TwilioConfig struct {
	AccountSID     string `envconfig:"TWILIO_ACCOUNT_SID" default:""`
	AuthToken      string `envconfig:"TWILIO_AUTH_TOKEN" default:""`
	FromNumber     string `envconfig:"TWILIO_PHONE_NUMBER" default:""`
	WhatsAppNumber string `envconfig:"TWILIO_WHATSAPP_NUMBER" default:""`
}

func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

type ReminderConfig struct {
	Enabled      bool   `envconfig:"REMINDER_ENABLED" default:"false"`
	Schedule     string `envconfig:"REMINDER_CRON" default:"0 0 10 * * *"`
	TemplateName string `envconfig:"REMINDER_TEMPLATE_NAME" default:"예약 알림"`
}

type ExportConfig struct {
	Bucket    string `envconfig:"EXPORT_S3_BUCKET" default:""`
	Prefix    string `envconfig:"EXPORT_S3_PREFIX" default:"revenue/"`
	Region    string `envconfig:"EXPORT_S3_REGION" default:"ap-northeast-2"`
	Endpoint  string `envconfig:"EXPORT_S3_ENDPOINT" default:""`
	AccessKey string `envconfig:"EXPORT_S3_ACCESS_KEY" default:""`
	SecretKey string `envconfig:"EXPORT_S3_SECRET_KEY" default:""`
}

func (c ExportConfig) Enabled() bool {
	return c.Bucket != ""
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads an optional .env file (ENV_FILE overrides the path) and then
// processes the environment. Variables already set in the environment win.
func LoadConfig() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "Asia/Seoul",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e-only",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{SameSite: "Lax"},
		Salon: SalonConfig{
			TimeZone:       "Asia/Seoul",
			RejectOverlaps: true,
		},
		Reminder: ReminderConfig{
			Schedule:     "0 0 10 * * *",
			TemplateName: "예약 알림",
		},
		Metrics: MetricsConfig{Path: "/metrics"},
	}
}
