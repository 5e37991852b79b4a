// Package wallet holds the key material of the monitored wallet and signs
// transactions on its behalf.
package wallet

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

const (
	// ed25519Flag is the signature scheme flag of ed25519 keys.
	ed25519Flag byte = 0x00

	legacyKeyPrefix = "suiprivkey:"
	bech32KeyHRP    = "suiprivkey"
)

// transactionIntent prefixes transaction bytes before hashing: intent scope
// TransactionData, version V0, app id Sui.
var transactionIntent = []byte{0, 0, 0}

var ErrInvalidPrivateKey = errors.New("invalid SUI_PRIVATE_KEY format")

// Signer holds an ed25519 key pair. It is read only after construction and
// safe for concurrent use.
type Signer struct {
	privateKey ed25519.PrivateKey
	address    string
}

type WalletInfo struct {
	Address string `json:"address"`
	// PrivateKey is the hex encoded 32 byte seed.
	PrivateKey string `json:"privateKey"`
}

// LoadSigner parses a private key in one of the formats produced by the Sui
// tooling: a bech32 "suiprivkey1..." string, or base64 optionally prefixed
// with "suiprivkey:". The decoded key is either the 32 byte seed or the seed
// prefixed with the ed25519 scheme flag.
func LoadSigner(key string) (*Signer, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidPrivateKey)
	}

	var (
		keyBytes []byte
		err      error
	)
	if strings.HasPrefix(key, bech32KeyHRP+"1") {
		keyBytes, err = decodeBech32Key(key)
	} else {
		keyBytes, err = base64.StdEncoding.DecodeString(strings.TrimPrefix(key, legacyKeyPrefix))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	switch {
	case len(keyBytes) == ed25519.SeedSize+1 && keyBytes[0] == ed25519Flag:
		keyBytes = keyBytes[1:]
		slog.Debug("removed key scheme byte from private key")
	case len(keyBytes) == ed25519.SeedSize+1:
		return nil, fmt.Errorf("%w: unsupported key scheme flag 0x%02x", ErrInvalidPrivateKey, keyBytes[0])
	case len(keyBytes) != ed25519.SeedSize:
		return nil, fmt.Errorf("%w: wrong byte length %d", ErrInvalidPrivateKey, len(keyBytes))
	}

	return NewSigner(keyBytes), nil
}

// NewSigner creates a signer from a 32 byte ed25519 seed.
func NewSigner(seed []byte) *Signer {
	privateKey := ed25519.NewKeyFromSeed(seed)
	return &Signer{
		privateKey: privateKey,
		address:    deriveAddress(privateKey.Public().(ed25519.PublicKey)),
	}
}

func decodeBech32Key(key string) ([]byte, error) {
	hrp, data, err := bech32.Decode(key)
	if err != nil {
		return nil, err
	}
	if hrp != bech32KeyHRP {
		return nil, fmt.Errorf("unexpected key prefix %q", hrp)
	}
	return bech32.ConvertBits(data, 5, 8, false)
}

// deriveAddress computes blake2b-256(flag || public key).
func deriveAddress(pub ed25519.PublicKey) string {
	h := blake2b.Sum256(append([]byte{ed25519Flag}, pub...))
	return "0x" + hex.EncodeToString(h[:])
}

func (s *Signer) Address() string {
	return s.address
}

func (s *Signer) PublicKey() ed25519.PublicKey {
	return s.privateKey.Public().(ed25519.PublicKey)
}

// SignTransaction signs unsigned transaction bytes and returns the base64
// serialized signature (flag || signature || public key) accepted by
// sui_executeTransactionBlock.
func (s *Signer) SignTransaction(txBytes []byte) (string, error) {
	if len(txBytes) == 0 {
		return "", errors.New("empty transaction bytes")
	}

	msg := make([]byte, 0, len(transactionIntent)+len(txBytes))
	msg = append(msg, transactionIntent...)
	msg = append(msg, txBytes...)
	digest := blake2b.Sum256(msg)

	sig := ed25519.Sign(s.privateKey, digest[:])

	serialized := make([]byte, 0, 1+ed25519.SignatureSize+ed25519.PublicKeySize)
	serialized = append(serialized, ed25519Flag)
	serialized = append(serialized, sig...)
	serialized = append(serialized, s.PublicKey()...)

	return base64.StdEncoding.EncodeToString(serialized), nil
}

// Info returns the wallet address and the hex encoded seed.
func (s *Signer) Info() WalletInfo {
	return WalletInfo{
		Address:    s.address,
		PrivateKey: hex.EncodeToString(s.privateKey.Seed()),
	}
}
