package config

import (
	"errors"
	"fmt"
	"net/url"
)

type Config struct {
	Pool       PoolConfig       `mapstructure:"pool"`
	Cardano    CardanoConfig    `mapstructure:"cardano"`
	Reporting  ReportingConfig  `mapstructure:"reporting"`
	Marker     MarkerConfig     `mapstructure:"marker"`
	Lock       LockConfig       `mapstructure:"lock"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Blockfrost BlockfrostConfig `mapstructure:"blockfrost"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type PoolConfig struct {
	ID         string `mapstructure:"id"`
	VRFKeyFile string `mapstructure:"vrf-key-file"`
}

type CardanoConfig struct {
	SocketPath  string `mapstructure:"socket-path"`
	GenesisFile string `mapstructure:"genesis-file"`
}

type ReportingConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Timeout  int    `mapstructure:"timeout"`
}

type MarkerConfig struct {
	Path string `mapstructure:"path"`
}

type LockConfig struct {
	Path string `mapstructure:"path"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type BlockfrostConfig struct {
	ProjectID string `mapstructure:"project-id"`
	Endpoint  string `mapstructure:"endpoint"`
	Timeout   int    `mapstructure:"timeout"`
}

type MetricsConfig struct {
	PushgatewayURL string `mapstructure:"pushgateway-url"`
}

func (c *Config) Validate() error {
	if c.Pool.ID == "" {
		return errors.New("pool id is required")
	}
	if c.Pool.VRFKeyFile == "" {
		return errors.New("pool vrf-key-file is required")
	}
	if c.Cardano.SocketPath == "" {
		return errors.New("cardano socket-path is required")
	}
	if c.Cardano.GenesisFile == "" {
		return errors.New("cardano genesis-file is required")
	}

	if c.Reporting.Endpoint == "" {
		return errors.New("reporting endpoint is required")
	}
	endpoint, err := url.Parse(c.Reporting.Endpoint)
	if err != nil || !endpoint.IsAbs() || endpoint.Host == "" {
		return fmt.Errorf("reporting endpoint is not a valid URL: %s", c.Reporting.Endpoint)
	}
	if c.Reporting.Timeout <= 0 {
		return errors.New("reporting timeout must be greater than zero")
	}

	if c.Marker.Path == "" {
		return errors.New("marker path is required")
	}
	if c.Lock.Path == "" {
		return errors.New("lock path is required")
	}

	if c.Blockfrost.ProjectID != "" && c.Blockfrost.Endpoint == "" {
		return errors.New("blockfrost endpoint is required when a project id is set")
	}

	return nil
}
