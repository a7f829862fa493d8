package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// DefaultClientAddress is the server address used by the client when none is configured.
const DefaultClientAddress = "http://localhost:5000"

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the notes server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// APIPrefix is the path under which the server mounts its API.
	// Env: ADAPTER_API_PREFIX
	APIPrefix string `env:"API_PREFIX"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	// Token is the session token sent with authenticated requests.
	// Env: AUTH_TOKEN
	Token string `env:"AUTH_TOKEN"`
}

// GetClientConfig builds and validates the client configuration from
// defaults, environment variables and the leading flags of args.
//
// It returns the remaining positional arguments (the client command and its
// operands) alongside the config.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultClientAddress,
			APIPrefix:      DefaultAPIPrefix,
			RequestTimeout: 15 * time.Second,
		},
	}

	envCfg := &ClientConfig{}
	if err := env.Parse(envCfg); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	flagCfg := &ClientConfig{}
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&flagCfg.Adapter.HTTPAddress, "a", "", "Server base URL")
	fs.StringVar(&flagCfg.Adapter.APIPrefix, "api-prefix", "", "Server API prefix")
	fs.DurationVar(&flagCfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout")
	fs.StringVar(&flagCfg.Token, "t", "", "Auth token")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	for _, c := range []*ClientConfig{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, c, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, fs.Args(), cfg.validate()
}
