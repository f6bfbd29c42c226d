package cache

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// ContentKey returns the hex BLAKE3-256 digest of text. Stored verses carry
// the key of their source text so unchanged verses can be skipped.
func ContentKey(text string) string {
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// ContentKeyOf hashes parts in order with a NUL separator, so that
// ("ab", "c") and ("a", "bc") produce different keys.
func ContentKeyOf(parts ...string) string {
	h := blake3.New()
	for i, p := range parts {
		if i > 0 {
			_, _ = h.Write([]byte{0})
		}
		_, _ = h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
