package blockfrost

import (
	"context"

	"github.com/blockfrost/blockfrost-go"
)

// Client covers the blockfrost queries used by the node sync check.
type Client interface {
	GetLatestEpoch(ctx context.Context) (blockfrost.Epoch, error)
	Health(ctx context.Context) (blockfrost.Health, error)
}
