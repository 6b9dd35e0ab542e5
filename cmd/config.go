package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"dentallab/internal/core/domain/services"
	"dentallab/internal/jobs"
	"dentallab/internal/pkg/clock"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	LabTimezone         string
	CompletionPolicy    string
	OverdueScanSchedule string
	LogLevel            string
}

// LoadConfig reads .env.<APP_ENV> and then .env into the process
// environment, then builds a Config with defaults applied. Variables already
// set in the environment win over both files, and missing files are skipped.
func LoadConfig() (Config, error) {
	files := []string{".env"}
	if env := os.Getenv("APP_ENV"); env != "" {
		files = []string{".env." + env, ".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	config := Config{
		HTTPPort:            getenv("HTTP_PORT", "8082"),
		DBHost:              getenv("DB_HOST", "localhost"),
		DBPort:              getenv("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           getenv("DB_SSLMODE", "disable"),
		LabTimezone:         getenv("LAB_TIMEZONE", clock.DefaultZone),
		CompletionPolicy:    getenv("COMPLETION_POLICY", "lenient"),
		OverdueScanSchedule: getenv("OVERDUE_SCAN_SCHEDULE", jobs.DefaultOverdueSchedule),
		LogLevel:            getenv("LOG_LEVEL", "info"),
	}
	return config, config.Validate()
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errList []error

	if _, err := strconv.ParseUint(c.HTTPPort, 10, 16); err != nil {
		errList = append(errList, fmt.Errorf("HTTP_PORT %q is not a port", c.HTTPPort))
	}
	if _, err := strconv.ParseUint(c.DBPort, 10, 16); err != nil {
		errList = append(errList, fmt.Errorf("DB_PORT %q is not a port", c.DBPort))
	}
	if c.DBUser == "" {
		errList = append(errList, errors.New("DB_USER is required"))
	}
	if c.DBName == "" {
		errList = append(errList, errors.New("DB_NAME is required"))
	}
	if _, err := clock.NewLabClock(c.LabTimezone); err != nil {
		errList = append(errList, fmt.Errorf("LAB_TIMEZONE: %w", err))
	}
	if _, err := c.Policy(); err != nil {
		errList = append(errList, fmt.Errorf("COMPLETION_POLICY: %w", err))
	}
	if _, err := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	).Parse(c.OverdueScanSchedule); err != nil {
		errList = append(errList, fmt.Errorf("OVERDUE_SCAN_SCHEDULE: %w", err))
	}
	if _, err := c.Level(); err != nil {
		errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	return errors.Join(errList...)
}

func (c Config) Policy() (services.CompletionPolicy, error) {
	return services.ParseCompletionPolicy(c.CompletionPolicy)
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

// DSN is the libpq connection string for the lab database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
