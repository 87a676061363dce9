package project

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/forgeops/pakmeta/pkg/pakmeta"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateDescriptor runs struct tag validation and the rules that cannot be
// expressed in tags.
func validateDescriptor(d *Descriptor) error {
	if err := validate.Struct(d); err != nil {
		return formatValidationError(err)
	}

	for name, version := range d.Components {
		if name == "" {
			return fmt.Errorf("components: component names must not be empty: %w", pakmeta.ErrInvalidDescriptor)
		}
		if version == "" {
			return fmt.Errorf("components[%s]: version must not be empty: %w", name, pakmeta.ErrInvalidDescriptor)
		}
	}

	return nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrs) > 0 {
			e := validationErrs[0]
			return fmt.Errorf("%s: validation failed on '%s' tag (value: %v): %w",
				e.Namespace(), e.Tag(), e.Value(), pakmeta.ErrInvalidDescriptor)
		}
	}
	return fmt.Errorf("%v: %w", err, pakmeta.ErrInvalidDescriptor)
}
