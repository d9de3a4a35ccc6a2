package forwarder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pacewatch/internal/config/configs"
	"pacewatch/internal/core/domain"
	"pacewatch/internal/core/port/mocks"
)

func testExportCfg() configs.Export {
	return configs.Export{
		BatchSize:             50,
		IntervalSeconds:       60,
		FailedRetryMinutes:    10,
		RequestTimeoutSeconds: 5,
	}
}

func testJob(exports *mocks.MockExportRepository, sink *mocks.MockAnalyticsSink) *Job {
	return New(exports, sink, testExportCfg(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func record(id int64) domain.AnalyticsExport {
	return domain.AnalyticsExport{
		ID:       id,
		MetricID: id * 10,
		Payload:  domain.ExportPayload{CampaignID: 1, MetricDate: "2025-01-15"},
		Status:   domain.ExportPending,
	}
}

func TestRunOnceRequeuesBeforeFetching(t *testing.T) {
	exports := mocks.NewMockExportRepository(t)
	sink := mocks.NewMockAnalyticsSink(t)

	var cutoff time.Time
	exports.EXPECT().
		RequeueStaleFailures(mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, c time.Time) { cutoff = c }).
		Return(2, nil)
	exports.EXPECT().PendingBatch(mock.Anything, 50).Return(nil, nil)

	testJob(exports, sink).RunOnce(context.Background())

	// failed records must age FailedRetryMinutes before coming back
	assert.WithinDuration(t, time.Now().UTC().Add(-10*time.Minute), cutoff, 5*time.Second)
}

func TestRunOnceDeliversSequentially(t *testing.T) {
	exports := mocks.NewMockExportRepository(t)
	sink := mocks.NewMockAnalyticsSink(t)

	exports.EXPECT().RequeueStaleFailures(mock.Anything, mock.Anything).Return(0, nil)
	exports.EXPECT().PendingBatch(mock.Anything, 50).
		Return([]domain.AnalyticsExport{record(1), record(2), record(3)}, nil)

	var delivered []int64
	sink.EXPECT().
		Deliver(mock.Anything, mock.AnythingOfType("domain.ExportPayload")).
		RunAndReturn(func(_ context.Context, p domain.ExportPayload) error {
			delivered = append(delivered, p.CampaignID)
			return nil
		}).Times(3)
	exports.EXPECT().MarkSent(mock.Anything, mock.AnythingOfType("int64"), mock.AnythingOfType("time.Time")).
		Return(nil).Times(3)

	testJob(exports, sink).RunOnce(context.Background())

	assert.Len(t, delivered, 3)
}

func TestRunOnceContinuesAfterFailure(t *testing.T) {
	exports := mocks.NewMockExportRepository(t)
	sink := mocks.NewMockAnalyticsSink(t)

	exports.EXPECT().RequeueStaleFailures(mock.Anything, mock.Anything).Return(0, nil)
	exports.EXPECT().PendingBatch(mock.Anything, 50).
		Return([]domain.AnalyticsExport{record(1), record(2)}, nil)

	calls := 0
	sink.EXPECT().
		Deliver(mock.Anything, mock.AnythingOfType("domain.ExportPayload")).
		RunAndReturn(func(context.Context, domain.ExportPayload) error {
			calls++
			if calls == 1 {
				return errors.New("sink returned 502")
			}
			return nil
		}).Times(2)

	exports.EXPECT().
		MarkFailed(mock.Anything, int64(1), mock.AnythingOfType("time.Time"), "sink returned 502").
		Return(nil)
	exports.EXPECT().
		MarkSent(mock.Anything, int64(2), mock.AnythingOfType("time.Time")).
		Return(nil)

	testJob(exports, sink).RunOnce(context.Background())

	assert.Equal(t, 2, calls)
}

func TestRunOnceAbortsWhenFetchFails(t *testing.T) {
	exports := mocks.NewMockExportRepository(t)
	sink := mocks.NewMockAnalyticsSink(t)

	exports.EXPECT().RequeueStaleFailures(mock.Anything, mock.Anything).Return(0, nil)
	exports.EXPECT().PendingBatch(mock.Anything, 50).Return(nil, errors.New("connection refused"))

	// no Deliver expectations: a fetch error skips the batch entirely
	testJob(exports, sink).RunOnce(context.Background())
}

func TestStartRunsImmediatelyAndStops(t *testing.T) {
	exports := mocks.NewMockExportRepository(t)
	sink := mocks.NewMockAnalyticsSink(t)

	ran := make(chan struct{}, 1)
	exports.EXPECT().
		RequeueStaleFailures(mock.Anything, mock.Anything).
		Run(func(context.Context, time.Time) {
			select {
			case ran <- struct{}{}:
			default:
			}
		}).
		Return(0, nil)
	exports.EXPECT().PendingBatch(mock.Anything, 50).Return(nil, nil)

	j := testJob(exports, sink)
	j.Start(context.Background())
	defer j.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("forwarder did not run on start")
	}
}
