package validation

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every ConfigError via errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigError reports an input that cannot describe a drawable village.
type ConfigError struct {
	Field   string
	Value   any
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
	if e.Value == nil {
		return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s: %s (got %v)", e.Field, e.Message, e.Value)
}

// Is makes errors.Is(err, ErrConfiguration) true for any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// Configf builds a ConfigError for field with a formatted message.
func Configf(field string, value any, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)}
}
