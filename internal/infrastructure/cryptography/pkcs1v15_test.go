//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padding_oracle_service/internal/domain/attack"
)

const testModulusBytes = 96

func TestLeftPad(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		k    int
		want []byte
	}{
		{"shorter than k", []byte{0x02, 0x01}, 4, []byte{0x00, 0x00, 0x02, 0x01}},
		{"already k bytes", []byte{0x01, 0x02, 0x03}, 3, []byte{0x01, 0x02, 0x03}},
		{"empty input", nil, 2, []byte{0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LeftPad(tt.buf, tt.k))
		})
	}
}

func TestPadUnpadRoundTrip(t *testing.T) {
	messages := [][]byte{
		[]byte("x"),
		[]byte("We did it! We did it!"),
		[]byte("message with a \x00 byte inside"),
		bytes.Repeat([]byte{0xab}, testModulusBytes-attack.PaddingOverhead),
	}

	for _, msg := range messages {
		em, err := PadPKCS1v15(msg, testModulusBytes)
		require.NoError(t, err)
		require.Len(t, em, testModulusBytes)

		assert.Equal(t, byte(0x00), em[0])
		assert.Equal(t, byte(0x02), em[1])

		got, err := UnpadPKCS1v15(em)
		require.NoError(t, err)
		assert.Equal(t, msg, got)
	}
}

func TestPadRejectsOversizedMessage(t *testing.T) {
	msg := bytes.Repeat([]byte{0x01}, testModulusBytes-attack.PaddingOverhead+1)
	_, err := PadPKCS1v15(msg, testModulusBytes)
	assert.Error(t, err)
}

func TestUnpadMalformed(t *testing.T) {
	filled := func(k int, mutate func([]byte)) []byte {
		em := bytes.Repeat([]byte{0xff}, k)
		em[0] = 0x00
		em[1] = 0x02
		mutate(em)
		return em
	}

	tests := []struct {
		name string
		em   []byte
	}{
		{
			name: "nonzero first byte",
			em:   filled(testModulusBytes, func(em []byte) { em[0] = 0x01 }),
		},
		{
			name: "wrong second byte",
			em:   filled(testModulusBytes, func(em []byte) { em[1] = 0x01 }),
		},
		{
			name: "no separator",
			em:   filled(testModulusBytes, func([]byte) {}),
		},
		{
			name: "separator before any padding byte does not count",
			em:   filled(testModulusBytes, func(em []byte) { em[2] = 0x00 }),
		},
		{
			name: "too short",
			em:   []byte{0x00, 0x02, 0xff, 0x00, 0x01},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnpadPKCS1v15(tt.em)
			require.Error(t, err)
			assert.True(t, errors.Is(err, attack.ErrMalformedPlaintext))
		})
	}
}

func TestUnpadSkipsSeparatorAtIndexTwo(t *testing.T) {
	// A zero directly after the 0x00 0x02 prefix is not a separator; the
	// first zero after at least one padding byte is.
	em := bytes.Repeat([]byte{0xff}, 16)
	em[0] = 0x00
	em[1] = 0x02
	em[2] = 0x00
	em[10] = 0x00

	got, err := UnpadPKCS1v15(em)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xff}, 5), got)
}
