package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Process launch and exit errors
const (
	// ErrCodeSpawnFailed indicates a stage's executable could not be started.
	ErrCodeSpawnFailed ErrorCode = "SPAWN_FAILED"
	// ErrCodeNonZeroExit indicates a stage exited with a non-zero status.
	ErrCodeNonZeroExit ErrorCode = "NON_ZERO_EXIT"
)

// Stream errors
const (
	// ErrCodeIOFailure indicates a read or write on a bridged stream failed.
	ErrCodeIOFailure ErrorCode = "IO_FAILURE"
	// ErrCodeStreamNotCaptured indicates an operation required a stream that
	// was not captured at spawn time.
	ErrCodeStreamNotCaptured ErrorCode = "STREAM_NOT_CAPTURED"
)

// Coordination errors
const (
	// ErrCodeCoordination indicates a relay worker panicked or an internal
	// wait primitive became unusable.
	ErrCodeCoordination ErrorCode = "COORDINATION_FAILED"
)

// Usage errors
const (
	// ErrCodeInvalidPipeline indicates a pipeline was built or used incorrectly.
	ErrCodeInvalidPipeline ErrorCode = "INVALID_PIPELINE"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)
