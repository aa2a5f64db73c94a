package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, fees, schedules)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Club      ClubConfig
	Scheduler SchedulerConfig
	SMTP      SMTPConfig
	Stripe    StripeConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig holds the shared secret of the hosted auth provider. Tokens are
// issued elsewhere; this service only verifies them.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Audience string `envconfig:"JWT_AUDIENCE" default:"authenticated"`
}

type ClubConfig struct {
	TimeZone            string        `envconfig:"CLUB_TIMEZONE" default:"America/New_York"`
	FreezeMonthlyFee    int64         `envconfig:"CLUB_FREEZE_MONTHLY_FEE_CENTS" default:"2000"`
	ActivationGraceDays int           `envconfig:"CLUB_ACTIVATION_GRACE_DAYS" default:"7"`
	ClaimWindow         time.Duration `envconfig:"CLUB_WAITLIST_CLAIM_WINDOW" default:"5m"`
}

type SchedulerConfig struct {
	Enabled         bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`
	IssuanceSpec    string `envconfig:"SCHEDULER_ISSUANCE_SPEC" default:"5 0 * * *"`
	FreezeSweepSpec string `envconfig:"SCHEDULER_FREEZE_SWEEP_SPEC" default:"15 0 * * *"`
	ClaimSweepSpec  string `envconfig:"SCHEDULER_CLAIM_SWEEP_SPEC" default:"@every 1m"`
}

type SMTPConfig struct {
	Host      string `envconfig:"SMTP_HOST"`
	Port      int    `envconfig:"SMTP_PORT" default:"587"`
	User      string `envconfig:"SMTP_USER"`
	Password  string `envconfig:"SMTP_PASSWORD"`
	FromEmail string `envconfig:"SMTP_FROM_EMAIL" default:"no-reply@localhost"`
}

type StripeConfig struct {
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c ClubConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid CLUB_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

func LoadConfig() (Config, error) {
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
			MaxConns: 4,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Audience: "authenticated",
		},
		Club: ClubConfig{
			TimeZone:            "UTC",
			FreezeMonthlyFee:    2000,
			ActivationGraceDays: 7,
			ClaimWindow:         5 * time.Minute,
		},
		Scheduler: SchedulerConfig{
			Enabled: false,
		},
	}
}
