package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// shortLen is the number of hex characters kept by Short. Long enough to
// make collisions between idents in one build implausible.
const shortLen = 16

// Content returns the full hex sha256 digest of the string.
func Content(str string) string {
	hasher := sha256.New()
	hasher.Write([]byte(str))
	return hex.EncodeToString(hasher.Sum(nil))
}

// Short returns a truncated content digest suitable for output file naming.
func Short(str string) string {
	return Content(str)[:shortLen]
}
