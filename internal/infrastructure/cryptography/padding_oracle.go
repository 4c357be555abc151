package cryptography

import (
	"crypto/rsa"
	"errors"
	"math/big"

	"padding_oracle_service/internal/domain/attack"
	"padding_oracle_service/internal/pkg/logger"
)

// paddingOracle wraps an RSA private key and leaks exactly one bit per
// query: whether a ciphertext decrypts to a plaintext with the 0x00 0x02
// prefix. It models the external system under attack; the recovery service
// only ever sees its boolean answers.
type paddingOracle struct {
	privateKey *rsa.PrivateKey
	k          int
	queries    uint64
	logger     logger.Logger
}

// NewPaddingOracle creates a padding oracle for the given private key.
func NewPaddingOracle(privateKey *rsa.PrivateKey, logger logger.Logger) (attack.PaddingOracle, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}
	return &paddingOracle{
		privateKey: privateKey,
		k:          privateKey.Size(),
		logger:     logger,
	}, nil
}

// IsValid decrypts the ciphertext integer and reports whether the plaintext,
// left-padded to the modulus byte length, begins with 0x00 0x02.
func (o *paddingOracle) IsValid(ciphertext *big.Int) bool {
	o.queries++

	m := new(big.Int).Exp(ciphertext, o.privateKey.D, o.privateKey.N)
	em := LeftPad(m.Bytes(), o.k)

	return em[0] == 0x00 && em[1] == 0x02
}

// Queries returns the number of oracle queries issued so far.
func (o *paddingOracle) Queries() uint64 {
	return o.queries
}
