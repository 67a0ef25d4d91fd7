package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lgbarn/gochess/internal/errors"
)

var validate = validator.New()

// Validate checks every section of the configuration. All violations are
// reported in one error wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}

	var details strings.Builder
	for _, fe := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		switch fe.Tag() {
		case "oneof":
			fmt.Fprintf(&details, "%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
		case "gte":
			fmt.Fprintf(&details, "%s must be at least %s, got %v", field, fe.Param(), fe.Value())
		case "lte":
			fmt.Fprintf(&details, "%s must be at most %s, got %v", field, fe.Param(), fe.Value())
		default:
			fmt.Fprintf(&details, "%s failed %s validation", field, fe.Tag())
		}
	}
	return fmt.Errorf("%s: %w", details.String(), errors.ErrInvalidConfig)
}
