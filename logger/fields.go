package logger

import "time"

// Standard field names used across execkit log events.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"

	// Process execution fields.
	FieldStage    = "stage"
	FieldProgram  = "program"
	FieldRunID    = "run_id"
	FieldExitCode = "exit_code"
	FieldStream   = "stream"
	FieldPath     = "path"
)

// Fields builds a field map from alternating key/value pairs.
// Odd trailing keys are ignored.
func Fields(kv ...interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		fields[key] = kv[i+1]
	}
	return fields
}

// ErrorFields builds a field map describing a failed operation.
func ErrorFields(operation string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: operation,
		FieldStatus:    "error",
		FieldError:     err.Error(),
	}
}

// DurationFields builds a field map describing a completed operation.
func DurationFields(operation string, d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: operation,
		FieldStatus:    "ok",
		FieldDuration:  d.Milliseconds(),
	}
}
