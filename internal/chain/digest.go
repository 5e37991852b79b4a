package chain

import (
	"fmt"

	"github.com/mr-tron/base58"
)

const digestLength = 32

// ValidateDigest checks that digest is a base58 encoded 32 byte transaction
// digest.
func ValidateDigest(digest string) error {
	b, err := base58.Decode(digest)
	if err != nil {
		return fmt.Errorf("invalid transaction digest %q: %w", digest, err)
	}
	if len(b) != digestLength {
		return fmt.Errorf("invalid transaction digest %q: expected %d bytes, got %d", digest, digestLength, len(b))
	}
	return nil
}
