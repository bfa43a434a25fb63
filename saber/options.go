package saber

import (
	"time"

	"github.com/moffa90/go-anima/protocol"
)

// Config holds the controller configuration.
type Config struct {
	// Port is an explicit serial port to use, skipping discovery (optional)
	Port string

	// Transport is an already-open connection to use instead of opening a
	// serial port (optional, mainly for tests)
	Transport Transport

	// ProgressCallback is called during uploads and erases (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// ReadTimeout is the timeout for ordinary reads
	ReadTimeout time.Duration

	// EraseReadTimeout is the raised timeout used while waiting for erase
	// progress bytes
	EraseReadTimeout time.Duration

	// ChunkSize is the largest single write the saber's input buffer accepts
	ChunkSize int

	// ChunkDelay is the pause between chunks of an oversized command
	ChunkDelay time.Duration

	// ByteDelay is the inter-byte pacing for NXT file streaming
	ByteDelay time.Duration

	// FileDelay is the settle time between consecutive file uploads
	FileDelay time.Duration

	// EffectDelay is the settle time between consecutive sound-effect
	// assignments
	EffectDelay time.Duration

	// ReadRetries is how many times an empty line read is retried before
	// the empty result is accepted
	ReadRetries int

	// RetryDelay is the pause before retrying an empty line read
	RetryDelay time.Duration
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ReadTimeout:      protocol.DefaultReadTimeout,
		EraseReadTimeout: protocol.EraseReadTimeout,
		ChunkSize:        protocol.ChunkSize,
		ChunkDelay:       protocol.ChunkDelay,
		ByteDelay:        protocol.ByteDelay,
		FileDelay:        protocol.FileDelay,
		EffectDelay:      time.Second,
		ReadRetries:      1,
		RetryDelay:       500 * time.Millisecond,
	}
}

// Option is a functional option for configuring the Controller.
type Option func(*Config)

// WithPort binds the session to an explicit serial port instead of taking
// the first discovered saber. The port is accepted as-is; use PortIsSaber
// first if you want the USB-ID check.
//
// Example:
//
//	ctl, err := saber.Connect(saber.WithPort("/dev/ttyACM0"))
func WithPort(name string) Option {
	return func(c *Config) {
		c.Port = name
	}
}

// WithTransport injects an already-open Transport. The controller takes
// ownership and closes it on Close.
func WithTransport(t Transport) Option {
	return func(c *Config) {
		c.Transport = t
	}
}

// WithProgressCallback sets a callback to track upload and erase progress.
//
// Example:
//
//	ctl, err := saber.Connect(
//	    saber.WithProgressCallback(func(p saber.Progress) {
//	        fmt.Printf("%s %.1f%%\n", p.File, p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for controller operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithReadTimeout sets the timeout for ordinary reads. Default is 3s.
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.ReadTimeout = timeout
		}
	}
}

// WithChunkSize sets the largest single write the saber accepts. Default is
// 128 bytes; sabers drop bytes past their input buffer, so only lower this.
func WithChunkSize(size int) Option {
	return func(c *Config) {
		if size > 0 && size <= protocol.ChunkSize {
			c.ChunkSize = size
		}
	}
}

// WithChunkDelay sets the pause between chunks of an oversized command.
func WithChunkDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.ChunkDelay = d
		}
	}
}

// WithByteDelay sets the inter-byte pacing used when streaming file data to
// an NXT on non-Windows hosts. Default is 87µs.
func WithByteDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.ByteDelay = d
		}
	}
}

// WithFileDelay sets the settle time between consecutive file uploads.
// Default is 5s; the saber needs time to finalize a write.
func WithFileDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.FileDelay = d
		}
	}
}

// WithEffectDelay sets the settle time between consecutive sound-effect
// assignments. Default is 1s.
func WithEffectDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.EffectDelay = d
		}
	}
}

// WithRetryDelay sets the pause before retrying an empty line read.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.RetryDelay = d
		}
	}
}
