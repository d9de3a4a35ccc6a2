package port

import "errors"

// Sentinel errors shared across adapters. Repositories translate driver
// errors (e.g. pgx.ErrNoRows) into these at the adapter boundary so the
// HTTP layer can map them to status codes with errors.Is.
var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrFlightNotFound   = errors.New("flight not found")
	ErrSignalNotFound   = errors.New("signal not found")

	// ErrFlightMismatch is returned when the requested flight exists but
	// belongs to a different campaign.
	ErrFlightMismatch = errors.New("flight does not belong to campaign")

	// ErrInvalidMetricDate is returned when an ingestion request carries a
	// missing or malformed metric date.
	ErrInvalidMetricDate = errors.New("invalid metric date")

	// ErrSinkNotConfigured is returned by the sink client when no endpoint
	// is configured. The forwarder records it as a delivery failure so the
	// record retries once configuration is fixed.
	ErrSinkNotConfigured = errors.New("analytics sink endpoint not configured")
)
