package blockfrostapi

import (
	"context"
	"net/http"
	"time"

	"github.com/blockfrost/blockfrost-go"
	bf "github.com/kilnfi/cardano-schedule-reporter/internal/blockfrost"
)

type Client struct {
	blockfrost blockfrost.APIClient
}

var _ bf.Client = (*Client)(nil)

type ClientOptions struct {
	ProjectID string
	Server    string
	Timeout   time.Duration
}

func NewClient(opts ClientOptions) *Client {
	return &Client{
		blockfrost: blockfrost.NewAPIClient(
			blockfrost.APIClientOptions{
				ProjectID: opts.ProjectID,
				Server:    opts.Server,
				Client: &http.Client{
					Timeout: opts.Timeout,
				},
			},
		),
	}
}

//nolint:wrapcheck
func (c *Client) GetLatestEpoch(ctx context.Context) (blockfrost.Epoch, error) {
	return c.blockfrost.EpochLatest(ctx)
}

//nolint:wrapcheck
func (c *Client) Health(ctx context.Context) (blockfrost.Health, error) {
	return c.blockfrost.Health(ctx)
}
