package chain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// SuiCoinType is the fully qualified type of the native SUI coin.
	SuiCoinType = "0x2::sui::SUI"

	// AddressLength is the byte length of a Sui address.
	AddressLength = 32

	// MistPerSui is the number of MIST in one SUI.
	MistPerSui = 1_000_000_000
)

// NormalizeAddress returns the canonical form of a Sui address: 0x prefixed,
// lowercase and left padded to 64 hex characters.
func NormalizeAddress(address string) (string, error) {
	a := strings.ToLower(strings.TrimSpace(address))
	a = strings.TrimPrefix(a, "0x")
	if len(a) == 0 || len(a) > AddressLength*2 {
		return "", fmt.Errorf("invalid sui address %q: wrong length", address)
	}
	a = strings.Repeat("0", AddressLength*2-len(a)) + a
	if _, err := hex.DecodeString(a); err != nil {
		return "", fmt.Errorf("invalid sui address %q: %w", address, err)
	}
	return "0x" + a, nil
}

func IsValidAddress(address string) bool {
	_, err := NormalizeAddress(address)
	return err == nil
}

// AddressFromBytes renders a 32 byte value as a Sui address.
func AddressFromBytes(b []byte) (string, error) {
	if len(b) != AddressLength {
		return "", fmt.Errorf("invalid address length %d", len(b))
	}
	return "0x" + hex.EncodeToString(b), nil
}
