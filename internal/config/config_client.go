// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientConfig holds the settings of the command-line API client.
type ClientConfig struct {
	// ServerAddress is the base URL of the cpoint API.
	// Env: CPOINT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"http://localhost:3001"`

	// RequestTimeout bounds every outbound request.
	// Env: CPOINT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// TokenFile is where the bearer token is kept between invocations.
	// Env: CPOINT_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE" envDefault:".cpoint-token"`

	// LogFile receives the client's structured log.
	// Env: CPOINT_LOG_FILE
	LogFile string `env:"LOG_FILE" envDefault:"cpoint-client.log"`
}

// GetClientConfig loads the client configuration from CPOINT_* environment
// variables, falling back to the envDefault values, and validates it.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "CPOINT_"}); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
