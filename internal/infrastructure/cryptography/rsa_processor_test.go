//go:build unit
// +build unit

package cryptography

import (
	"crypto/rsa"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padding_oracle_service/internal/domain/attack"
	pkgTesting "padding_oracle_service/internal/pkg/testing"
)

const testKeySize2048 = 2048

func setupRSAProcessor(t *testing.T) attack.RSAProcessor {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)
	processor, err := NewRSAProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestRSAProcessor(t *testing.T) {
	processor := setupRSAProcessor(t)

	t.Run("GenerateKeys", func(t *testing.T) {
		privateKey, publicKey, err := processor.GenerateKeys(testKeySize2048)
		assert.NoError(t, err)
		assert.NotNil(t, privateKey)
		assert.NotNil(t, publicKey)
		assert.IsType(t, &rsa.PublicKey{}, publicKey)
		assert.Equal(t, testKeySize2048, privateKey.N.BitLen())
	})

	t.Run("EncryptDecryptInteger", func(t *testing.T) {
		publicKey, privateKey := ReferenceKeyPair()

		m := new(big.Int).SetBytes([]byte("This is a secret message"))
		c, err := processor.EncryptInteger(m, publicKey)
		assert.NoError(t, err)

		decrypted, err := processor.DecryptInteger(c, privateKey)
		assert.NoError(t, err)
		assert.Zero(t, m.Cmp(decrypted))
	})

	t.Run("EncryptIntegerOutOfRange", func(t *testing.T) {
		publicKey, _ := ReferenceKeyPair()

		_, err := processor.EncryptInteger(new(big.Int).Set(publicKey.N), publicKey)
		assert.Error(t, err)
	})

	t.Run("EncryptPKCS1v15RoundTrip", func(t *testing.T) {
		publicKey, privateKey := ReferenceKeyPair()
		msg := []byte("We did it! We did it!")

		ciphertext, err := processor.EncryptPKCS1v15(msg, publicKey)
		assert.NoError(t, err)

		plainnum, err := processor.DecryptInteger(ciphertext, privateKey)
		assert.NoError(t, err)

		em := LeftPad(plainnum.Bytes(), publicKey.Size())
		got, err := UnpadPKCS1v15(em)
		assert.NoError(t, err)
		assert.Equal(t, msg, got)
	})

	t.Run("EncryptWithNilKey", func(t *testing.T) {
		_, err := processor.EncryptInteger(big.NewInt(1), nil)
		assert.Error(t, err)

		_, err = processor.EncryptPKCS1v15([]byte("x"), nil)
		assert.Error(t, err)
	})

	t.Run("SaveAndReadKeys", func(t *testing.T) {
		tmpDir := t.TempDir()
		privFile := filepath.Join(tmpDir, "private.pem")
		pubFile := filepath.Join(tmpDir, "public.pem")

		privateKey, publicKey, err := processor.GenerateKeys(testKeySize2048)
		assert.NoError(t, err)

		assert.NoError(t, processor.SavePrivateKeyToFile(privateKey, privFile))
		assert.NoError(t, processor.SavePublicKeyToFile(publicKey, pubFile))

		readPriv, err := processor.ReadPrivateKey(privFile)
		assert.NoError(t, err)
		assert.Equal(t, privateKey.N, readPriv.N)
		assert.Equal(t, privateKey.E, readPriv.E)

		readPub, err := processor.ReadPublicKey(pubFile)
		assert.NoError(t, err)
		assert.Equal(t, publicKey.N, readPub.N)
		assert.Equal(t, publicKey.E, readPub.E)
	})

	t.Run("SavePrivateKeyInvalidPath", func(t *testing.T) {
		privateKey, _, err := processor.GenerateKeys(testKeySize2048)
		assert.NoError(t, err)

		err = processor.SavePrivateKeyToFile(privateKey, "/invalid/path/private.pem")
		assert.Error(t, err)
	})
}

func TestReferenceKeyPair(t *testing.T) {
	publicKey, privateKey := ReferenceKeyPair()

	assert.Equal(t, 96, publicKey.Size())
	assert.Equal(t, 65537, publicKey.E)

	// The pair must actually invert: (m^e)^d = m mod n.
	m := big.NewInt(123456789)
	e := big.NewInt(int64(publicKey.E))
	c := new(big.Int).Exp(m, e, publicKey.N)
	back := new(big.Int).Exp(c, privateKey.D, privateKey.N)
	assert.Zero(t, m.Cmp(back))
}
