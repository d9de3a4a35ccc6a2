package configs

import "time"

// Export configures the analytics export forwarder and the external sink.
// SinkURL may be left empty; the forwarder then records a configuration
// failure on every record instead of crashing, so deliveries recover once
// the endpoint is set.
type Export struct {
	// SinkURL is the HTTP endpoint of the external analytics warehouse.
	SinkURL string `env:"SINK_URL"`
	// SinkAPIKey is sent as the X-Api-Key header when non-empty.
	SinkAPIKey string `env:"SINK_API_KEY"`
	// BatchSize bounds how many pending records one forwarder run handles.
	// Values below 1 are raised to 1.
	BatchSize int `env:"BATCH_SIZE" envDefault:"200"`
	// IntervalSeconds is the forwarder tick interval. Values below 15 are
	// raised to 15.
	IntervalSeconds int `env:"INTERVAL_SECONDS" envDefault:"60"`
	// FailedRetryMinutes is how long a failed record sits before it is
	// requeued to pending.
	FailedRetryMinutes int `env:"FAILED_RETRY_MINUTES" envDefault:"10"`
	// RequestTimeoutSeconds bounds a single delivery attempt.
	RequestTimeoutSeconds int `env:"REQUEST_TIMEOUT_SECONDS" envDefault:"10"`
}

// Interval returns the tick interval, enforcing the 15 second floor.
func (c Export) Interval() time.Duration {
	s := c.IntervalSeconds
	if s < 15 {
		s = 15
	}
	return time.Duration(s) * time.Second
}

// Batch returns the run batch size, enforcing a floor of 1 so a
// misconfigured value cannot produce a negative LIMIT.
func (c Export) Batch() int {
	if c.BatchSize < 1 {
		return 1
	}
	return c.BatchSize
}

// RetryAge returns how old a failed record must be before requeueing.
func (c Export) RetryAge() time.Duration {
	return time.Duration(c.FailedRetryMinutes) * time.Minute
}

// RequestTimeout returns the per-attempt delivery timeout.
func (c Export) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
