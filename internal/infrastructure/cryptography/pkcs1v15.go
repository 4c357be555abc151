package cryptography

import (
	"crypto/rand"
	"fmt"

	"padding_oracle_service/internal/domain/attack"
)

// LeftPad returns buf left-padded with zero bytes to exactly k bytes. An
// integer whose leading bytes are zero loses them in big-endian conversion;
// fixed-width representations must restore them before any prefix check.
func LeftPad(buf []byte, k int) []byte {
	if len(buf) >= k {
		return buf
	}
	padded := make([]byte, k)
	copy(padded[k-len(buf):], buf)
	return padded
}

// PadPKCS1v15 encodes msg as 0x00 0x02 || PS || 0x00 || msg to exactly k
// bytes, where PS is random non-zero padding.
func PadPKCS1v15(msg []byte, k int) ([]byte, error) {
	if len(msg) > k-attack.PaddingOverhead {
		return nil, fmt.Errorf("message of %d bytes does not fit a %d byte modulus", len(msg), k)
	}

	em := make([]byte, k)
	em[1] = 0x02
	if err := fillNonZeroBytes(em[2 : k-len(msg)-1]); err != nil {
		return nil, fmt.Errorf("failed to generate padding: %w", err)
	}
	copy(em[k-len(msg):], msg)
	return em, nil
}

// UnpadPKCS1v15 strips PKCS#1 v1.5 encryption padding from a k-byte block.
// The separator is only searched after at least one padding byte.
func UnpadPKCS1v15(em []byte) ([]byte, error) {
	if len(em) < attack.PaddingOverhead || em[0] != 0x00 || em[1] != 0x02 {
		return nil, fmt.Errorf("%w: missing 0x00 0x02 prefix", attack.ErrMalformedPlaintext)
	}
	for i := 3; i < len(em); i++ {
		if em[i] == 0x00 {
			return em[i+1:], nil
		}
	}
	return nil, fmt.Errorf("%w: no separator byte after padding", attack.ErrMalformedPlaintext)
}

func fillNonZeroBytes(buf []byte) error {
	for i := range buf {
		for buf[i] == 0 {
			if _, err := rand.Read(buf[i : i+1]); err != nil {
				return err
			}
		}
	}
	return nil
}
