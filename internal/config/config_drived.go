package config

import (
	"fmt"
	"time"
)

// DrivedConfig is the configuration view of the drive emulator daemon,
// assembled from [StructuredConfig].
type DrivedConfig struct {
	// Address is the HTTP listen address.
	Address string
	// JWTSecret signs issued and accepted access tokens.
	JWTSecret string
	// TokenTTL is the lifetime of issued access tokens.
	TokenTTL time.Duration
}

// GetDrivedConfig builds the drive emulator config from the merged structured
// configuration, applying defaults for optional settings.
func GetDrivedConfig() (*DrivedConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	drivedCfg := &DrivedConfig{
		Address:   cfg.Drived.Address,
		JWTSecret: cfg.Drived.JWTSecret,
		TokenTTL:  cfg.Drived.TokenTTL,
	}
	drivedCfg.applyDefaults()

	return drivedCfg, nil
}

func (cfg *DrivedConfig) applyDefaults() {
	if cfg.Address == "" {
		cfg.Address = ":8080"
	}
	if cfg.JWTSecret == "" {
		// dev-only daemon, a predictable secret keeps local setup trivial
		cfg.JWTSecret = "recipe-keeper-dev"
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
}
