package cardanocli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/kilnfi/cardano-schedule-reporter/internal/cardano"
)

type Client struct {
	logger   *slog.Logger
	opts     ClientOptions
	executor CommandExecutor
}

var _ cardano.CardanoClient = (*Client)(nil)

type ClientOptions struct {
	SocketPath  string
	GenesisFile string
	PoolID      string
	VRFKeyFile  string
}

func NewClient(opts ClientOptions, executor CommandExecutor) *Client {
	logger := slog.With(
		slog.String("component", "cardano-client"),
	)
	return &Client{
		logger:   logger,
		opts:     opts,
		executor: executor,
	}
}

// CurrentEpoch queries the node tip and returns the epoch it reports.
func (c *Client) CurrentEpoch(ctx context.Context) (int, error) {
	args := []string{
		"query",
		"tip",
		"--mainnet",
		"--socket-path",
		c.opts.SocketPath,
	}

	cmd := fmt.Sprintf("cardano-cli %s", strings.Join(args, " "))
	c.logger.DebugContext(ctx, "querying node tip", slog.String("cmd", cmd))

	output, diagnostics, err := c.executor.ExecCommand(ctx, "cardano-cli", args...)
	c.logDiagnostics(ctx, "query tip", diagnostics)
	if err != nil {
		return 0, &cardano.QueryError{Command: "query tip", Err: err}
	}

	tip := cardano.ClientQueryTipResponse{}
	if err := json.Unmarshal(output, &tip); err != nil {
		return 0, &cardano.QueryError{Command: "query tip", Err: fmt.Errorf("unable to unmarshal response: %w", err)}
	}
	if tip.Epoch == nil {
		return 0, &cardano.QueryError{Command: "query tip", Err: errors.New("epoch field missing from tip response")}
	}
	if *tip.Epoch < 0 {
		return 0, &cardano.QueryError{Command: "query tip", Err: fmt.Errorf("negative epoch in tip response: %d", *tip.Epoch)}
	}

	return *tip.Epoch, nil
}

// LeadershipSchedule queries the leadership schedule of the configured pool
// for the epoch the node currently considers current. The raw JSON text is
// returned unparsed; the reporting client validates it before sending.
func (c *Client) LeadershipSchedule(ctx context.Context) (json.RawMessage, error) {
	if _, err := os.Stat(c.opts.GenesisFile); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to find shelley genesis file: %w", err)
	}
	if _, err := os.Stat(c.opts.VRFKeyFile); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to find pool vrf skey file: %w", err)
	}

	args := []string{
		"query",
		"leadership-schedule",
		"--genesis",
		c.opts.GenesisFile,
		"--stake-pool-id",
		c.opts.PoolID,
		"--vrf-signing-key-file",
		c.opts.VRFKeyFile,
		"--current",
		"--mainnet",
		"--socket-path",
		c.opts.SocketPath,
	}

	c.logger.InfoContext(ctx,
		"fetching leadership schedule",
		slog.String("pool_id", c.opts.PoolID),
	)

	output, diagnostics, err := c.executor.ExecCommand(ctx, "cardano-cli", args...)
	c.logDiagnostics(ctx, "query leadership-schedule", diagnostics)
	if err != nil {
		return nil, &cardano.QueryError{Command: "query leadership-schedule", Err: err}
	}

	return json.RawMessage(output), nil
}

// logDiagnostics surfaces the tool's stderr output. Diagnostics never change
// the outcome of a query; only the exit status does.
func (c *Client) logDiagnostics(ctx context.Context, command string, diagnostics []byte) {
	text := strings.TrimSpace(string(diagnostics))
	if text == "" {
		return
	}
	c.logger.InfoContext(ctx,
		"cardano-cli diagnostics",
		slog.String("command", command),
		slog.String("stderr", text),
	)
}
