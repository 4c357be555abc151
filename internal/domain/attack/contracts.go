package attack

import (
	"context"
	"crypto/rsa"
	"math/big"
)

// PaddingOracle models the external system that leaks exactly one bit per
// query: whether a ciphertext decrypts to a plaintext beginning with the
// bytes 0x00 0x02 once left-padded to the modulus byte length.
type PaddingOracle interface {
	// IsValid decrypts the ciphertext integer and reports whether the
	// resulting plaintext carries the PKCS#1 v1.5 encryption prefix.
	IsValid(ciphertext *big.Int) bool

	// Queries returns the number of oracle queries issued so far.
	Queries() uint64
}

// PlaintextRecoveryService recovers the plaintext of a PKCS#1 v1.5 ciphertext
// from the public key and a padding oracle alone, without the private key.
type PlaintextRecoveryService interface {
	// Recover runs the adaptive chosen-ciphertext attack against the
	// ciphertext integer and returns the decoded message bytes.
	Recover(ctx context.Context, ciphertext *big.Int) ([]byte, error)
}

// RSAProcessor provides the textbook RSA operations the attack tooling needs:
// key handling and the raw m^e / c^d modular exponentiation primitives.
type RSAProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified bit size.
	GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// EncryptInteger computes the raw RSA primitive m^e mod n.
	EncryptInteger(m *big.Int, publicKey *rsa.PublicKey) (*big.Int, error)

	// DecryptInteger computes the raw RSA primitive c^d mod n.
	DecryptInteger(c *big.Int, privateKey *rsa.PrivateKey) (*big.Int, error)

	// EncryptPKCS1v15 pads msg to the modulus byte length and encrypts it,
	// returning the ciphertext as an integer.
	EncryptPKCS1v15(msg []byte, publicKey *rsa.PublicKey) (*big.Int, error)

	// SavePrivateKeyToFile saves the RSA private key to a PEM-encoded file (PKCS#1 format).
	SavePrivateKeyToFile(privateKey *rsa.PrivateKey, filename string) error

	// SavePublicKeyToFile saves the RSA public key to a PEM-encoded file (PKIX format).
	SavePublicKeyToFile(publicKey *rsa.PublicKey, filename string) error

	// ReadPrivateKey reads an RSA private key from a PEM-encoded file (PKCS#1 or PKCS#8 format).
	ReadPrivateKey(privateKeyPath string) (*rsa.PrivateKey, error)

	// ReadPublicKey reads an RSA public key from a PEM-encoded file (PKIX format).
	ReadPublicKey(publicKeyPath string) (*rsa.PublicKey, error)
}
