package runner

import (
	"database/sql/driver"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	blockfrostmocks "github.com/kilnfi/cardano-schedule-reporter/internal/blockfrost/mocks"
	cardanomocks "github.com/kilnfi/cardano-schedule-reporter/internal/cardano/mocks"
	"github.com/kilnfi/cardano-schedule-reporter/internal/history"
	"github.com/kilnfi/cardano-schedule-reporter/internal/marker"
	"github.com/kilnfi/cardano-schedule-reporter/internal/metrics"
	reportingmocks "github.com/kilnfi/cardano-schedule-reporter/internal/reporting/mocks"
	"github.com/stretchr/testify/require"
)

const testPoolID = "pool1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnzs23v9ccrydpk8qarc0jqqqqqqq"

type clients struct {
	cardano  *cardanomocks.MockCardanoClient
	reporter *reportingmocks.MockClient
	bf       *blockfrostmocks.MockClient
}

func setupClients(t *testing.T) *clients {
	t.Helper()

	return &clients{
		cardano:  cardanomocks.NewMockCardanoClient(t),
		reporter: reportingmocks.NewMockClient(t),
		bf:       blockfrostmocks.NewMockClient(t),
	}
}

// setupMarker creates a marker store in a fresh directory. content == ""
// leaves the marker file absent.
func setupMarker(t *testing.T, content string) (*marker.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "last_reported_epoch")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return marker.NewStore(path), path
}

func setupHistory(t *testing.T) (*history.Store, sqlmock.Sqlmock) {
	t.Helper()

	mockdb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}

	return history.NewStore(sqlx.NewDb(mockdb, "sqlite3")), mock
}

type AnyTime struct{}

// Match satisfies sqlmock.Argument interface
func (a AnyTime) Match(v driver.Value) bool {
	_, ok := v.(time.Time)
	return ok
}

func markerContent(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func setupMetrics(t *testing.T) *metrics.Collection {
	t.Helper()
	return metrics.NewCollection()
}
