package saber

// Progress phases.
const (
	// PhaseUpload is reported while streaming file bytes to the saber.
	PhaseUpload = "upload"

	// PhaseErase is reported while the saber erases its flash.
	PhaseErase = "erase"
)

// Progress contains information about a long-running operation. Passed to
// ProgressCallback during uploads and erases.
type Progress struct {
	// Phase is PhaseUpload or PhaseErase
	Phase string

	// File is the device-side name of the file being streamed (upload only)
	File string

	// FileIndex is the position of the current file in the plan, 0-based
	FileIndex int

	// TotalFiles is the number of files in the plan
	TotalFiles int

	// BytesSent is the number of bytes streamed for the current file
	BytesSent int64

	// TotalBytes is the size of the current file
	TotalBytes int64

	// Percentage is the completion of the current file or erase (0-100)
	Percentage float64
}

// ProgressCallback is called periodically during uploads and erases.
// Implementations should return quickly; the engine performs no concurrent
// work and blocks on the callback.
type ProgressCallback func(Progress)

// Logger is an optional logging interface the controller reports through.
// This allows integration with any logging framework; with no logger set the
// controller is silent.
//
// Example with log/slog:
//
//	type SlogLogger struct{ L *slog.Logger }
//	func (l SlogLogger) Debug(msg string, kv ...interface{}) { l.L.Debug(msg, kv...) }
//	func (l SlogLogger) Info(msg string, kv ...interface{})  { l.L.Info(msg, kv...) }
//	func (l SlogLogger) Error(msg string, kv ...interface{}) { l.L.Error(msg, kv...) }
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
