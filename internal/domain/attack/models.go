package attack

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"padding_oracle_service/internal/pkg/validators"
)

// KeyPairParams describes an RSA key pair to generate as an attack target.
type KeyPairParams struct {
	Algorithm string `mapstructure:"algorithm" validate:"required,oneof=RSA"`
	KeySize   uint   `mapstructure:"key_size" validate:"required,keysize"`
}

// Validate checks that all fields in KeyPairParams are valid.
func (p *KeyPairParams) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register key size validation: %w", err)
	}

	err := validate.Struct(p)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
