// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// legacyEnv holds the variable names used by earlier deployments of the
// notes service. They are applied below the structured names.
type legacyEnv struct {
	JWTSecret string `env:"JWT_SECRET"`
	MongoURI  string `env:"MONGO_URI"`
	Port      string `env:"PORT"`
}

func (l legacyEnv) toConfig() *StructuredConfig {
	cfg := &StructuredConfig{}
	cfg.App.TokenSignKey = l.JWTSecret
	cfg.Storage.DB.DSN = l.MongoURI
	if l.Port != "" {
		cfg.Server.HTTPAddress = ":" + l.Port
	}
	return cfg
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types. Legacy variable names
// (JWT_SECRET, MONGO_URI, PORT) fill fields the structured names left empty.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvWithOptions(cfg, env.Options{})
}

// parseDotEnv reads the .env file at path and maps its variables the same
// way [parseEnv] maps the process environment. The process environment is
// left untouched. A missing file yields a nil config and no error.
func parseDotEnv(path string) (*StructuredConfig, error) {
	if path == "" {
		return nil, nil
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	cfg := &StructuredConfig{}
	if err := parseEnvWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseEnvWithOptions(cfg *StructuredConfig, opts env.Options) error {
	var legacy legacyEnv
	if err := env.ParseWithOptions(&legacy, opts); err != nil {
		return fmt.Errorf("error getting legacy env configs: %w", err)
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	*cfg = mergeLegacy(*cfg, legacy)
	return nil
}

func mergeLegacy(cfg StructuredConfig, legacy legacyEnv) StructuredConfig {
	fallback := legacy.toConfig()
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = fallback.App.TokenSignKey
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = fallback.Storage.DB.DSN
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = fallback.Server.HTTPAddress
	}
	return cfg
}
