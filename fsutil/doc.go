// Package fsutil wraps the os file-system primitives so that each call is
// echoed to stderr the same way executed commands are, prefixed with
// "{tool}:fs". The wrappers are pass-throughs: arguments, results and error
// values are exactly those of the underlying os functions.
//
// Echoing honors the same NO_ECHO toggle as command echoing; see the echo
// package.
//
//	data, err := fsutil.ReadFile("config.yml")
//	err = fsutil.WriteFile("out/result.txt", data, 0o644)
package fsutil
