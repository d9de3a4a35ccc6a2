package forwarder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pacewatch/internal/config/configs"
	"pacewatch/internal/core/domain"
	"pacewatch/internal/core/port"
)

// Job is the export forwarder: a fixed-interval background worker that
// requeues stale failures and delivers pending export records to the
// analytics sink. It owns its timer; Start and Stop are its explicit
// lifecycle. A Job is not restartable after Stop.
type Job struct {
	exports port.ExportRepository
	sink    port.AnalyticsSink
	cfg     configs.Export
	logger  *slog.Logger

	done chan struct{}
	wg   sync.WaitGroup
}

// New constructs a forwarder job with injected configuration and sink.
func New(exports port.ExportRepository, sink port.AnalyticsSink, cfg configs.Export, logger *slog.Logger) *Job {
	return &Job{
		exports: exports,
		sink:    sink,
		cfg:     cfg,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Start launches the timer loop. The first run fires immediately, then on
// every tick of the configured interval (floored at 15 seconds).
func (j *Job) Start(ctx context.Context) {
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()

		ticker := time.NewTicker(j.cfg.Interval())
		defer ticker.Stop()

		j.RunOnce(ctx)
		for {
			select {
			case <-ticker.C:
				j.RunOnce(ctx)
			case <-j.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the timer loop and waits for an in-flight run to finish.
func (j *Job) Stop() {
	close(j.done)
	j.wg.Wait()
}

// RunOnce executes one forwarder pass. It never panics out: errors are
// logged and the schedule continues.
func (j *Job) RunOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			j.logger.Error("forwarder run panicked", slog.Any("panic", r))
		}
	}()

	requeued, err := j.exports.RequeueStaleFailures(ctx, time.Now().UTC().Add(-j.cfg.RetryAge()))
	if err != nil {
		j.logger.Error("requeue stale failures", slog.Any("error", err))
	} else if requeued > 0 {
		j.logger.Info("requeued stale export failures", slog.Int64("count", requeued))
	}

	batch, err := j.exports.PendingBatch(ctx, j.cfg.Batch())
	if err != nil {
		j.logger.Error("fetch pending exports", slog.Any("error", err))
		return
	}

	// Deliveries run strictly sequentially to cap outbound concurrency to
	// the sink at 1. One failed record does not abort the batch.
	for _, rec := range batch {
		now := time.Now().UTC()
		if err = j.deliver(ctx, rec.Payload); err != nil {
			if markErr := j.exports.MarkFailed(ctx, rec.ID, now, err.Error()); markErr != nil {
				j.logger.Error("mark export failed", slog.Int64("export_id", rec.ID), slog.Any("error", markErr))
			}
			j.logger.Warn("export delivery failed", slog.Int64("export_id", rec.ID), slog.Any("error", err))
			continue
		}
		if err = j.exports.MarkSent(ctx, rec.ID, now); err != nil {
			j.logger.Error("mark export sent", slog.Int64("export_id", rec.ID), slog.Any("error", err))
		}
	}
}

// deliver wraps one sink call in a bounded per-attempt timeout so a stalled
// sink cannot hold the batch indefinitely.
func (j *Job) deliver(ctx context.Context, payload domain.ExportPayload) error {
	ctx, cancel := context.WithTimeout(ctx, j.cfg.RequestTimeout())
	defer cancel()
	return j.sink.Deliver(ctx, payload)
}
