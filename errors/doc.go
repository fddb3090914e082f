// Package errors provides unified error handling for execkit.
// It implements structured error types with machine-readable codes and
// contextual details for pipeline stages, streams, and exit statuses.
package errors
