package kafka

import "time"

// Config holds Kafka connection parameters for the pricing service.
type Config struct {
	Brokers []string

	// BatchTimeout bounds how long a writer buffers messages before a flush.
	// Zero means the package default.
	BatchTimeout time.Duration

	// WriteTimeout bounds a single produce call. Zero means no explicit bound
	// beyond the caller's context.
	WriteTimeout time.Duration
}
