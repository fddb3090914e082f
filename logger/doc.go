// Package logger provides structured logging for execkit
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
// Console output goes to stderr by default so it never mixes with
// process pipeline data on stdout.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.Get("process")
//	log.Debug("stage started", logger.Fields(logger.FieldStage, 0))
package logger
