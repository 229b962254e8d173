package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"pickup/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable name, e.g. PICKUP_HTTP_PORT.
const EnvPrefix = "PICKUP"

type Config struct {
	HTTPPort        string        `envconfig:"HTTP_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// Timezone is the IANA zone of the pickup location; slot times are local to it.
	Timezone          string        `envconfig:"TIMEZONE" default:"Local"`
	PickupWindowStart string        `envconfig:"WINDOW_START" default:"11:00"`
	PickupWindowEnd   string        `envconfig:"WINDOW_END" default:"14:00"`
	PickupGranularity time.Duration `envconfig:"SLOT_GRANULARITY" default:"15m"`
	PickupBuffer      time.Duration `envconfig:"SLOT_BUFFER" default:"15m"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
	JWTIssuer string `envconfig:"JWT_ISSUER" default:"pickup"`

	OrphanSweepSchedule     string        `envconfig:"ORPHAN_SWEEP_SCHEDULE" default:"*/5 * * * *"`
	OrphanMaxAge            time.Duration `envconfig:"ORPHAN_MAX_AGE" default:"10m"`
	SessionEvictionSchedule string        `envconfig:"SESSION_EVICTION_SCHEDULE" default:"*/10 * * * *"`
	SessionMaxIdle          time.Duration `envconfig:"SESSION_MAX_IDLE" default:"2h"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN builds the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// PickupWindow parses the configured window bounds.
func (c Config) PickupWindow() (kernel.TimeOfDay, kernel.TimeOfDay, error) {
	start, err := kernel.ParseTimeOfDay(c.PickupWindowStart)
	if err != nil {
		return kernel.TimeOfDay{}, kernel.TimeOfDay{}, fmt.Errorf("pickup window start: %w", err)
	}
	end, err := kernel.ParseTimeOfDay(c.PickupWindowEnd)
	if err != nil {
		return kernel.TimeOfDay{}, kernel.TimeOfDay{}, fmt.Errorf("pickup window end: %w", err)
	}
	return start, end, nil
}

func (c Config) validate() error {
	var problems []error
	if _, err := c.Location(); err != nil {
		problems = append(problems, err)
	}
	if _, _, err := c.PickupWindow(); err != nil {
		problems = append(problems, err)
	}
	if c.PickupGranularity%time.Minute != 0 || c.PickupBuffer%time.Minute != 0 {
		problems = append(problems, errors.New("pickup granularity and buffer must be whole minutes"))
	}
	if c.OrphanMaxAge <= 0 {
		problems = append(problems, errors.New("orphan max age must be positive"))
	}
	if c.SessionMaxIdle <= 0 {
		problems = append(problems, errors.New("session max idle must be positive"))
	}
	return errors.Join(problems...)
}
