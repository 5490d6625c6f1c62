package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks structs against their validate tags. The voyage
// configuration reuses it at start time, so failures must read well on a
// terminal.
type Validator struct {
	validate *validator.Validate
}

// NewValidator returns a Validator with the default rule set.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate runs tag validation and rewrites the errors into one readable
// message per failing field.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	lines := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		lines = append(lines, fmt.Sprintf(
			"field '%s' failed validation: %s (value: '%v')",
			e.Field(), e.Tag(), e.Value(),
		))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(lines, "\n  "))
}

// ValidateConfig checks the loaded configuration tree.
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
