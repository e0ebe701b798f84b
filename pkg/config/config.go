package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/travigo/ctsearch/pkg/util"
	"gopkg.in/yaml.v3"
)

const (
	defaultMongoConnectionString = "mongodb://localhost:27017/"
	defaultRedisAddress          = "localhost:6379"
	defaultServivueloTimeout     = 30 * time.Second
	defaultListen                = ":8080"
)

type Config struct {
	Mongo      MongoConfig      `yaml:"mongo"`
	Redis      RedisConfig      `yaml:"redis"`
	Servivuelo ServivueloConfig `yaml:"servivuelo"`
	Events     EventsConfig     `yaml:"events"`

	Listen string `yaml:"listen"`
}

type MongoConfig struct {
	URI            string `yaml:"uri"`
	TrainDatabase  string `yaml:"train_database"`
	SearchDatabase string `yaml:"search_database"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`
}

type ServivueloConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type EventsConfig struct {
	Enabled bool `yaml:"enabled"`
}

func defaults() *Config {
	return &Config{
		Mongo: MongoConfig{
			URI: defaultMongoConnectionString,
		},
		Redis: RedisConfig{
			Address: defaultRedisAddress,
		},
		Servivuelo: ServivueloConfig{
			Timeout: defaultServivueloTimeout,
		},
		Listen: defaultListen,
	}
}

// Load builds the configuration from the optional yaml file at path and then the TRAVIGO_* environment
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	parseErrors := cfg.applyEnvironment(util.GetPrefixedEnvironmentVariables("TRAVIGO_"))

	if err := cfg.validate(parseErrors); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvironment(env map[string]string) []string {
	var parseErrors []string

	setString := func(name string, target *string) {
		if value := env[name]; value != "" {
			*target = value
		}
	}

	setString("TRAVIGO_MONGODB_CONNECTION", &c.Mongo.URI)
	setString("TRAVIGO_MONGODB_TRAIN_DATABASE", &c.Mongo.TrainDatabase)
	setString("TRAVIGO_MONGODB_SEARCH_DATABASE", &c.Mongo.SearchDatabase)
	setString("TRAVIGO_REDIS_ADDRESS", &c.Redis.Address)
	setString("TRAVIGO_REDIS_PASSWORD", &c.Redis.Password)
	setString("TRAVIGO_SERVIVUELO_URL", &c.Servivuelo.URL)
	setString("TRAVIGO_LISTEN", &c.Listen)

	if value := env["TRAVIGO_REDIS_DATABASE"]; value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			c.Redis.Database = n
		} else {
			parseErrors = append(parseErrors, fmt.Sprintf("TRAVIGO_REDIS_DATABASE must be an integer, got %q", value))
		}
	}

	if value := env["TRAVIGO_SERVIVUELO_TIMEOUT"]; value != "" {
		if timeout, err := time.ParseDuration(value); err == nil {
			c.Servivuelo.Timeout = timeout
		} else {
			parseErrors = append(parseErrors, fmt.Sprintf("TRAVIGO_SERVIVUELO_TIMEOUT must be a duration, got %q", value))
		}
	}

	if value := env["TRAVIGO_EVENTS_ENABLED"]; value != "" {
		if enabled, err := strconv.ParseBool(value); err == nil {
			c.Events.Enabled = enabled
		} else {
			parseErrors = append(parseErrors, fmt.Sprintf("TRAVIGO_EVENTS_ENABLED must be a boolean, got %q", value))
		}
	}

	return parseErrors
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	return c.validate(nil)
}

func (c *Config) validate(errs []string) error {
	if c.Mongo.URI == "" {
		errs = append(errs, "mongo.uri is required")
	}
	if c.Mongo.TrainDatabase == "" {
		errs = append(errs, "mongo.train_database is required")
	}
	if c.Mongo.SearchDatabase == "" {
		errs = append(errs, "mongo.search_database is required")
	}
	if c.Redis.Address == "" {
		errs = append(errs, "redis.address is required")
	}
	if c.Redis.Database < 0 {
		errs = append(errs, fmt.Sprintf("redis.database must not be negative, got %d", c.Redis.Database))
	}
	if c.Servivuelo.URL == "" {
		errs = append(errs, "servivuelo.url is required")
	} else if !strings.HasPrefix(c.Servivuelo.URL, "http://") && !strings.HasPrefix(c.Servivuelo.URL, "https://") {
		errs = append(errs, fmt.Sprintf("servivuelo.url must be an http(s) URL, got %q", c.Servivuelo.URL))
	}
	if c.Servivuelo.Timeout <= 0 {
		errs = append(errs, "servivuelo.timeout must be positive")
	}
	if c.Listen == "" {
		errs = append(errs, "listen is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
