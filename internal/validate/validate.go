package validate

// This package adds struct and field validation as a thin wrapper around the
// go-playground/validator package.
//
// e.g. internal/config/config.go
//   type ThemeConfig struct {
//       Digit string `yaml:"digit" validate:"hexcolor"`
//       Label string `yaml:"label" validate:"hexcolor"`
//   }
//
// Config loading and site frontmatter share the one validator instance so
// tag behavior stays consistent across the tool.

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a shared validator for the application.
// It is initialized once and reused to avoid repeated allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// Built-in tags cover everything needed so far: hexcolor, min,
		// max, gt, filepath. Custom tags would be registered here.
	})
	return validatorInst
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
