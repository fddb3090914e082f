package errors

import (
	"fmt"
)

// Detail keys attached by the process engine.
const (
	DetailStage     = "stage"
	DetailProgram   = "program"
	DetailExitCode  = "exit_code"
	DetailDirection = "direction"
	DetailStream    = "stream"
)

// AppError is the unified library error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// SpawnFailed creates a new AppError for a stage whose executable could not
// be started (missing binary, exec permission denied).
func SpawnFailed(stage int, program string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeSpawnFailed, Message: fmt.Sprintf("stage %d (%s) could not be started", stage, program),
		Details: map[string]any{DetailStage: stage, DetailProgram: program},
		Cause:   cause,
	}
}

// NonZeroExit creates a new AppError for a stage that exited unsuccessfully.
// An exitCode of -1 means the process was terminated by a signal.
func NonZeroExit(stage int, program string, exitCode int) *AppError {
	return &AppError{
		Code: ErrCodeNonZeroExit, Message: fmt.Sprintf("stage %d (%s) exited with status %d", stage, program, exitCode),
		Details: map[string]any{DetailStage: stage, DetailProgram: program, DetailExitCode: exitCode},
	}
}

// IOFailure creates a new AppError for a failed read or write on a bridged
// stream. Direction names the stream being bridged (stdin, stdout, stderr,
// pipe).
func IOFailure(direction string, stage int, cause error) *AppError {
	return &AppError{
		Code: ErrCodeIOFailure, Message: fmt.Sprintf("%s transfer failed for stage %d", direction, stage),
		Details: map[string]any{DetailDirection: direction, DetailStage: stage},
		Cause:   cause,
	}
}

// Coordination creates a new AppError for a relay panic or an unusable wait
// primitive. These usually indicate a defect in caller-supplied reader or
// writer logic rather than in the external commands.
func Coordination(reason string) *AppError {
	return &AppError{Code: ErrCodeCoordination, Message: reason}
}

// StreamNotCaptured creates a new AppError for an operation that required a
// stream endpoint which was not captured at spawn time.
func StreamNotCaptured(stream string) *AppError {
	return &AppError{
		Code: ErrCodeStreamNotCaptured, Message: fmt.Sprintf("%s was not captured by this spawn", stream),
		Details: map[string]any{DetailStream: stream},
	}
}

// InvalidPipeline creates a new AppError for a pipeline that was built or
// used incorrectly.
func InvalidPipeline(reason string) *AppError {
	return &AppError{Code: ErrCodeInvalidPipeline, Message: reason}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}
