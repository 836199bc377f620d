package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nikmy/flighthub/internal/api"
	"github.com/nikmy/flighthub/internal/backend"
	"github.com/nikmy/flighthub/internal/live"
	"github.com/nikmy/flighthub/internal/pubsub"
	"github.com/nikmy/flighthub/internal/push"
	"github.com/nikmy/flighthub/internal/repo"
	"github.com/nikmy/flighthub/internal/settings"
	"github.com/nikmy/flighthub/internal/telegram"
	"github.com/nikmy/flighthub/pkg/environment"
	"github.com/nikmy/flighthub/pkg/errors"
)

// Secrets that may come from the environment or a .env file.
const (
	envBackendURL    = "FLIGHTHUB_BACKEND_URL"
	envTelegramToken = "FLIGHTHUB_TELEGRAM_TOKEN"
	envMongoPassword = "FLIGHTHUB_MONGO_PASSWORD"
)

type Config struct {
	Environment environment.Env  `yaml:"Environment"`
	Backend     backend.Config   `yaml:"Backend"`
	HTTP        api.Config       `yaml:"HTTP"`
	Ops         push.Config      `yaml:"Ops"`
	Live        live.Config      `yaml:"Live"`
	Settings    settings.Config  `yaml:"Settings"`
	Mongo       repo.MongoConfig `yaml:"Mongo"`
	Kafka       pubsub.Config    `yaml:"Kafka"`
	Telegram    telegram.Config  `yaml:"Telegram"`
}

type flags struct {
	config string
	dotenv string
	env    string
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.config, "config", "config.yaml", "path to yaml config")
	flag.StringVar(&f.dotenv, "dotenv", ".env", "path to .env file with secrets")
	flag.StringVar(&f.env, "env", "", "environment (dev, prod)")
	flag.Parse()
	return f
}

func loadConfig(f flags) (*Config, error) {
	path, err := filepath.Abs(f.config)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", path)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	err = loadDotenv(f.dotenv)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(os.LookupEnv)

	if f.env != "" {
		cfg.Environment = environment.FromString(f.env)
	}

	return &cfg, nil
}

// loadDotenv reads the file when it exists. Variables already set in the
// process environment win.
func loadDotenv(path string) error {
	if path == "" {
		return nil
	}

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	err = godotenv.Load(path)
	if err != nil {
		return errors.WrapFailf(err, "load %q", path)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(envBackendURL); ok && v != "" {
		c.Backend.URL = v
	}
	if v, ok := lookup(envTelegramToken); ok && v != "" {
		c.Telegram.Token = v
	}
	if v, ok := lookup(envMongoPassword); ok && v != "" {
		c.Mongo.Auth.Password = v
	}
}
