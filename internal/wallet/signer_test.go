package wallet

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func testSeed() []byte {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	return seed
}

func TestLoadSigner(t *testing.T) {
	seed := testSeed()
	want := NewSigner(seed).Address()

	bech32Key := func(payload []byte) string {
		conv, err := bech32.ConvertBits(payload, 8, 5, true)
		require.NoError(t, err)
		key, err := bech32.Encode("suiprivkey", conv)
		require.NoError(t, err)
		return key
	}

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{
			name: "raw base64 seed",
			key:  base64.StdEncoding.EncodeToString(seed),
		},
		{
			name: "base64 seed with scheme flag",
			key:  base64.StdEncoding.EncodeToString(append([]byte{0x00}, seed...)),
		},
		{
			name: "legacy prefix",
			key:  "suiprivkey:" + base64.StdEncoding.EncodeToString(append([]byte{0x00}, seed...)),
		},
		{
			name: "bech32",
			key:  bech32Key(append([]byte{0x00}, seed...)),
		},
		{
			name:    "secp256k1 flag",
			key:     base64.StdEncoding.EncodeToString(append([]byte{0x01}, seed...)),
			wantErr: true,
		},
		{
			name:    "wrong length",
			key:     base64.StdEncoding.EncodeToString(seed[:20]),
			wantErr: true,
		},
		{
			name:    "not base64",
			key:     "%%%",
			wantErr: true,
		},
		{
			name:    "empty",
			key:     "  ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := LoadSigner(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrivateKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, s.Address())
		})
	}
}

func TestSignerAddress(t *testing.T) {
	s := NewSigner(testSeed())

	pub := s.PublicKey()
	h := blake2b.Sum256(append([]byte{0x00}, pub...))

	assert.Equal(t, "0x"+hex.EncodeToString(h[:]), s.Address())
	assert.Len(t, s.Address(), 66)
	assert.Equal(t, strings.ToLower(s.Address()), s.Address())
}

func TestSignTransaction(t *testing.T) {
	s := NewSigner(testSeed())
	txBytes := []byte("transaction bytes")

	encoded, err := s.SignTransaction(txBytes)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.Len(t, raw, 1+ed25519.SignatureSize+ed25519.PublicKeySize)

	assert.Equal(t, byte(0x00), raw[0])
	sig := raw[1 : 1+ed25519.SignatureSize]
	pub := ed25519.PublicKey(raw[1+ed25519.SignatureSize:])
	assert.Equal(t, s.PublicKey(), pub)

	digest := blake2b.Sum256(append([]byte{0, 0, 0}, txBytes...))
	assert.True(t, ed25519.Verify(pub, digest[:], sig))

	_, err = s.SignTransaction(nil)
	assert.Error(t, err)
}

func TestSignerInfo(t *testing.T) {
	seed := testSeed()
	s := NewSigner(seed)

	info := s.Info()
	assert.Equal(t, s.Address(), info.Address)
	assert.Equal(t, hex.EncodeToString(seed), info.PrivateKey)
}
