package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Mode selects between a faithful reproduction of the known flaws
// (unsalted SHA-256 hashes, no reset-token validation) and a corrected
// implementation of the same flows.
type Mode string

const (
	ModeTrainingFidelity Mode = "training-fidelity"
	ModeHardened         Mode = "hardened"
)

type Config struct {
	ServerPort    string
	SessionSecret string
	DBPath        string
	Mode          Mode
	LogLevel      string

	TemplateGlob string
	StaticDir    string
}

// DefaultSessionSecret is intentionally weak. This is a training target;
// a real deployment would refuse to start without SESSION_SECRET.
const DefaultSessionSecret = "dev_secret_key_change_in_production"

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		DBPath:        os.Getenv("DB_PATH"),
		Mode:          Mode(os.Getenv("MODE")),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		TemplateGlob:  "web/templates/*.html",
		StaticDir:     "web/static",
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "3206"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = DefaultSessionSecret
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "data/inventory.db"
	}
	if cfg.Mode != ModeHardened {
		cfg.Mode = ModeTrainingFidelity
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg
}

// Hardened reports whether the corrected auth behavior is enabled.
func (c *Config) Hardened() bool {
	return c.Mode == ModeHardened
}
