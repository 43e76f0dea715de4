package reporting

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client sends a pool's leadership schedule for an epoch to the reports API.
type Client interface {
	Report(ctx context.Context, epoch int, schedule json.RawMessage) error
}

// Payload is the JSON body accepted by the reports endpoint.
type Payload struct {
	PoolID   string          `json:"poolId"`
	Epoch    int             `json:"epoch"`
	Schedule json.RawMessage `json:"schedule"`
}

type HTTPClient struct {
	logger *slog.Logger
	client *resty.Client
	opts   ClientOptions
}

var _ Client = (*HTTPClient)(nil)

type ClientOptions struct {
	Endpoint string
	PoolID   string
	Timeout  time.Duration
}

func NewHTTPClient(opts ClientOptions) *HTTPClient {
	logger := slog.With(
		slog.String("component", "reporting-client"),
	)
	client := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{
		logger: logger,
		client: client,
		opts:   opts,
	}
}

// Report validates the schedule and POSTs it with the pool id and epoch. Any
// transport error or response status >= 400 fails the report.
func (c *HTTPClient) Report(ctx context.Context, epoch int, schedule json.RawMessage) error {
	if !json.Valid(schedule) {
		return &MalformedScheduleError{Epoch: epoch}
	}

	payload := Payload{
		PoolID:   c.opts.PoolID,
		Epoch:    epoch,
		Schedule: schedule,
	}

	c.logger.InfoContext(ctx,
		"sending leadership schedule report",
		slog.String("pool_id", c.opts.PoolID),
		slog.Int("epoch", epoch),
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.opts.Endpoint)
	if err != nil {
		return fmt.Errorf("unable to send report to %s: %w", c.opts.Endpoint, err)
	}

	if resp.StatusCode() >= 400 {
		c.logger.ErrorContext(ctx,
			"report rejected by endpoint",
			slog.Int("status", resp.StatusCode()),
			slog.String("body", string(resp.Body())),
		)
		return &HTTPError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	return nil
}
