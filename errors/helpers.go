package errors

import (
	stderrors "errors"
)

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// StageIndex extracts the failing stage index from an error, if present.
func StageIndex(err error) (int, bool) {
	return intDetail(err, DetailStage)
}

// ExitCode extracts the recorded exit code from an error, if present.
func ExitCode(err error) (int, bool) {
	return intDetail(err, DetailExitCode)
}

// Program extracts the failing stage's program name from an error, if present.
func Program(err error) (string, bool) {
	appErr, ok := AsAppError(err)
	if !ok {
		return "", false
	}
	s, ok := appErr.Details[DetailProgram].(string)
	return s, ok
}

func intDetail(err error, key string) (int, bool) {
	appErr, ok := AsAppError(err)
	if !ok {
		return 0, false
	}
	n, ok := appErr.Details[key].(int)
	return n, ok
}
