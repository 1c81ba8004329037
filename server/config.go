package server

import (
	"github.com/joeshaw/envdecode"
)

// Config is the server's environment-derived configuration
type Config struct {
	Addr          string `env:"KLONDIKE_ADDR,default=:8000"`
	AllowedOrigin string `env:"KLONDIKE_ALLOWED_ORIGIN,default=*"`
}

// ConfigFromEnv reads the configuration from the environment
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
