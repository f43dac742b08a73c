package appconf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"railbooking.org/internal/booking"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag value to an Environment.
// Unknown values are treated as development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the booking service.
type Config struct {
	Port          int
	Env           Environment
	ApiKeys       []string
	RateLimit     int
	MaxPassengers int
	SequenceMode  booking.SequenceMode
}

// envConfig is the environment variable view of Config. Command-line flags
// override whatever is read here.
type envConfig struct {
	Port          int      `env:"BOOKING_PORT" env-default:"4000"`
	Env           string   `env:"BOOKING_ENV" env-default:"development"`
	ApiKeys       []string `env:"BOOKING_API_KEYS" env-default:"test" env-separator:","`
	RateLimit     int      `env:"BOOKING_RATE_LIMIT" env-default:"100"`
	MaxPassengers int      `env:"BOOKING_MAX_PASSENGERS" env-default:"50"`
	SequenceMode  string   `env:"BOOKING_SEQUENCE_MODE" env-default:"request"`
}

// LoadFromEnv reads the configuration from the environment, applying defaults.
func LoadFromEnv() (Config, error) {
	var raw envConfig
	if err := cleanenv.ReadEnv(&raw); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	mode, err := booking.ParseSequenceMode(raw.SequenceMode)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:          raw.Port,
		Env:           EnvFlagToEnvironment(raw.Env),
		ApiKeys:       ParseAPIKeys(strings.Join(raw.ApiKeys, ",")),
		RateLimit:     raw.RateLimit,
		MaxPassengers: raw.MaxPassengers,
		SequenceMode:  mode,
	}

	return cfg, cfg.Validate()
}

// ParseAPIKeys splits a comma separated key list, dropping blanks.
func ParseAPIKeys(s string) []string {
	var keys []string
	for _, key := range strings.Split(s, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func (c Config) Validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("port %d out of range", c.Port)
	case c.RateLimit < 0:
		return errors.New("rate limit must not be negative")
	case c.MaxPassengers < 0:
		return errors.New("max passengers must not be negative")
	}

	_, err := booking.ParseSequenceMode(string(c.SequenceMode))
	return err
}
