package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/kilnfi/cardano-schedule-reporter/internal/blockfrost"
	"github.com/kilnfi/cardano-schedule-reporter/internal/cardano"
	"github.com/kilnfi/cardano-schedule-reporter/internal/history"
	"github.com/kilnfi/cardano-schedule-reporter/internal/marker"
	"github.com/kilnfi/cardano-schedule-reporter/internal/metrics"
	"github.com/kilnfi/cardano-schedule-reporter/internal/reporting"
)

// Runner sequences one reporting run: query the node tip epoch, compare it
// with the persisted marker and, when a new epoch has begun, fetch the
// leadership schedule, report it and advance the marker.
type Runner struct {
	logger     *slog.Logger
	cardano    cardano.CardanoClient
	reporter   reporting.Client
	marker     *marker.Store
	history    *history.Store
	blockfrost blockfrost.Client
	metrics    *metrics.Collection
	poolID     string
}

// Options carries the runner's collaborators. History and Blockfrost are
// optional; a nil History disables the audit trail and a nil Blockfrost
// disables the node sync check.
type Options struct {
	PoolID     string
	Cardano    cardano.CardanoClient
	Reporter   reporting.Client
	Marker     *marker.Store
	History    *history.Store
	Blockfrost blockfrost.Client
	Metrics    *metrics.Collection
}

func New(opts Options) *Runner {
	logger := slog.With(
		slog.String("component", "runner"),
	)
	return &Runner{
		logger:     logger,
		cardano:    opts.Cardano,
		reporter:   opts.Reporter,
		marker:     opts.Marker,
		history:    opts.History,
		blockfrost: opts.Blockfrost,
		metrics:    opts.Metrics,
		poolID:     opts.PoolID,
	}
}

// Run performs a single run. The tip epoch is fetched exactly once and that
// value flows through the trigger decision, the report payload, the history
// row and the marker update. The marker only advances after everything else
// succeeded, so a failed run is retried wholesale on the next invocation.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info("starting run",
		slog.String("pool_id", r.poolID),
		slog.Time("started_at", time.Now()),
	)

	currentEpoch, err := r.cardano.CurrentEpoch(ctx)
	if err != nil {
		return r.fail(fmt.Errorf("unable to query current epoch: %w", err))
	}
	r.metrics.NodeEpoch.Set(float64(currentEpoch))

	if r.blockfrost != nil {
		if err := r.checkNodeSync(ctx, currentEpoch); err != nil {
			return r.fail(err)
		}
	}

	lastReported, err := r.marker.Read()
	if err != nil {
		return r.fail(fmt.Errorf("unable to read last reported epoch: %w", err))
	}
	r.metrics.LastReportedEpoch.Set(float64(lastReported))

	if currentEpoch <= lastReported {
		r.logger.Info("epoch already reported, nothing to do",
			slog.Int("current_epoch", currentEpoch),
			slog.Int("last_reported_epoch", lastReported),
		)
		r.metrics.RunsTotal.WithLabelValues(metrics.RunResultNoop).Inc()
		return nil
	}

	r.logger.Info("new epoch detected",
		slog.Int("current_epoch", currentEpoch),
		slog.Int("last_reported_epoch", lastReported),
	)

	schedule, err := r.cardano.LeadershipSchedule(ctx)
	if err != nil {
		return r.fail(fmt.Errorf("unable to fetch leadership schedule: %w", err))
	}

	if err := r.reporter.Report(ctx, currentEpoch, schedule); err != nil {
		return r.fail(fmt.Errorf("unable to report leadership schedule for epoch %d: %w", currentEpoch, err))
	}
	r.metrics.ReportsTotal.Inc()
	r.metrics.ReportTimestamp.SetToCurrentTime()

	if r.history != nil {
		if err := r.history.RecordReport(ctx, r.poolID, currentEpoch, slotQuantity(schedule)); err != nil {
			return r.fail(err)
		}
	}

	if err := r.marker.Write(currentEpoch); err != nil {
		return r.fail(fmt.Errorf("unable to advance marker to epoch %d: %w", currentEpoch, err))
	}
	r.metrics.LastReportedEpoch.Set(float64(currentEpoch))
	r.metrics.RunsTotal.WithLabelValues(metrics.RunResultProcessed).Inc()

	r.logger.Info("epoch reported",
		slog.Int("epoch", currentEpoch),
		slog.Int("slot_qty", slotQuantity(schedule)),
	)
	return nil
}

// checkNodeSync compares the node tip epoch with the network epoch seen by
// blockfrost. A node that lags the network would produce a schedule for an
// epoch that is already over.
func (r *Runner) checkNodeSync(ctx context.Context, nodeEpoch int) error {
	health, err := r.blockfrost.Health(ctx)
	if err != nil {
		return fmt.Errorf("unable to query blockfrost health: %w", err)
	}
	if !health.IsHealthy {
		return ErrBlockfrostUnhealthy
	}

	latest, err := r.blockfrost.GetLatestEpoch(ctx)
	if err != nil {
		return fmt.Errorf("unable to query latest epoch from blockfrost: %w", err)
	}
	if nodeEpoch < latest.Epoch {
		return &ErrNodeOutOfSync{NodeEpoch: nodeEpoch, NetworkEpoch: latest.Epoch}
	}
	return nil
}

func (r *Runner) fail(err error) error {
	r.metrics.RunsTotal.WithLabelValues(metrics.RunResultFailed).Inc()
	return err
}

// slotQuantity counts the entries of an array-shaped schedule, or -1 when the
// schedule has another shape.
func slotQuantity(schedule json.RawMessage) int {
	var entries []json.RawMessage
	if err := json.Unmarshal(schedule, &entries); err != nil {
		return -1
	}
	return len(entries)
}
