package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Pool: PoolConfig{
			ID:         "pool1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnzs23v9ccrydpk8qarc0jqqqqqqq",
			VRFKeyFile: "/keys/vrf.skey",
		},
		Cardano: CardanoConfig{
			SocketPath:  "/var/run/cardano.socket",
			GenesisFile: "/config/shelley-genesis.json",
		},
		Reporting: ReportingConfig{
			Endpoint: "https://reports.example.com/api/schedules",
			Timeout:  30,
		},
		Marker: MarkerConfig{Path: "../last_reported_epoch"},
		Lock:   LockConfig{Path: "../.reporter.lock"},
	}
}

func TestValidate(t *testing.T) {
	t.Run("GoodPath_MinimalConfig", func(t *testing.T) {
		cfg := validConfig()
		require.NoError(t, cfg.Validate())
	})

	t.Run("GoodPath_BlockfrostFullyConfigured", func(t *testing.T) {
		cfg := validConfig()
		cfg.Blockfrost = BlockfrostConfig{
			ProjectID: "mainnetabc123",
			Endpoint:  "https://cardano-mainnet.blockfrost.io/api/v0",
			Timeout:   60,
		}
		require.NoError(t, cfg.Validate())
	})

	t.Run("SadPath_MissingPoolID", func(t *testing.T) {
		cfg := validConfig()
		cfg.Pool.ID = ""
		assert.EqualError(t, cfg.Validate(), "pool id is required")
	})

	t.Run("SadPath_MissingVRFKeyFile", func(t *testing.T) {
		cfg := validConfig()
		cfg.Pool.VRFKeyFile = ""
		assert.EqualError(t, cfg.Validate(), "pool vrf-key-file is required")
	})

	t.Run("SadPath_MissingSocketPath", func(t *testing.T) {
		cfg := validConfig()
		cfg.Cardano.SocketPath = ""
		assert.EqualError(t, cfg.Validate(), "cardano socket-path is required")
	})

	t.Run("SadPath_MissingGenesisFile", func(t *testing.T) {
		cfg := validConfig()
		cfg.Cardano.GenesisFile = ""
		assert.EqualError(t, cfg.Validate(), "cardano genesis-file is required")
	})

	t.Run("SadPath_MissingEndpoint", func(t *testing.T) {
		cfg := validConfig()
		cfg.Reporting.Endpoint = ""
		assert.EqualError(t, cfg.Validate(), "reporting endpoint is required")
	})

	t.Run("SadPath_RelativeEndpoint", func(t *testing.T) {
		cfg := validConfig()
		cfg.Reporting.Endpoint = "/api/schedules"
		require.Error(t, cfg.Validate())
	})

	t.Run("SadPath_ZeroTimeout", func(t *testing.T) {
		cfg := validConfig()
		cfg.Reporting.Timeout = 0
		assert.EqualError(t, cfg.Validate(), "reporting timeout must be greater than zero")
	})

	t.Run("SadPath_BlockfrostProjectIDWithoutEndpoint", func(t *testing.T) {
		cfg := validConfig()
		cfg.Blockfrost.ProjectID = "mainnetabc123"
		assert.EqualError(t, cfg.Validate(), "blockfrost endpoint is required when a project id is set")
	})
}
