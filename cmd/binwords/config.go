package main

import (
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Verbose bool `env:"BINWORDS_VERBOSE" env-default:"false" env-description:"Log diagnostics to stderr."`
	Color   bool `env:"BINWORDS_COLOR" env-default:"true" env-description:"Color diagnostic prefixes."`
}

func ReadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
