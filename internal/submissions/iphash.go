package submissions

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// HashOrigin one-way hashes a request origin for abuse analysis. The raw
// origin is never stored.
func HashOrigin(origin string) string {
	sum := sha3.Sum256([]byte(origin))
	return hex.EncodeToString(sum[:])
}
