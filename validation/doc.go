// Package validation provides input validation utilities for execkit.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// used for configuration structs; the programmatic collector suits
// cross-field checks.
//
// # Struct Tag Validation
//
//	type Settings struct {
//	    Name  string `yaml:"name" validate:"required"`
//	    Color string `yaml:"color" validate:"oneof=auto always never"`
//	}
//	err := validation.Validate(settings)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("program", program).OneOf("color", color, []string{"auto", "always", "never"})
//	if appErr := v.Validate(); appErr != nil {
//	    return appErr
//	}
package validation
