package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the drive transport layer.
type ClientAdapter struct {
	// DriveAddress is the drive API endpoint used by the client.
	DriveAddress string
	// RequestTimeout is the default timeout for outbound drive requests.
	RequestTimeout time.Duration
}

// ClientDB contains local cache connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the local cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync contains sync scheduler settings.
type ClientSync struct {
	// DebounceInterval is the quiet period before an automatic sync fires.
	DebounceInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains drive transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains scheduler settings.
	Sync ClientSync
}

// GetClientConfig builds and validates the client config view from the merged
// structured configuration, applying defaults for optional settings.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			DriveAddress:   cfg.Adapter.Address,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{DebounceInterval: cfg.Sync.DebounceInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Sync.DebounceInterval == 0 {
		cfg.Sync.DebounceInterval = 15 * time.Second
	}
}
