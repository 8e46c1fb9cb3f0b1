package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance.
// Errors name fields by their config key (api.rate_limit.requests) rather than the Go field.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	v.RegisterStructValidation(validateCache, CacheConfig{})

	return &Validator{
		validate: v,
	}
}

// validateCache rejects a janitor interval short enough to spin
func validateCache(sl validator.StructLevel) {
	c := sl.Current().Interface().(CacheConfig)
	if c.SweepInterval > 0 && c.SweepInterval < time.Second {
		sl.ReportError(c.SweepInterval, "sweep_interval", "SweepInterval", "min_sweep_interval", "")
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func (v *Validator) formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		key := e.Namespace()
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		value := e.Value()
		if strings.HasSuffix(key, "token") {
			value = "<redacted>"
		}
		messages = append(messages, fmt.Sprintf("%s failed validation: %s (value: '%v')", key, e.Tag(), value))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	return v.Validate(cfg)
}
