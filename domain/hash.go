package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashGUID returns the lowercase hex SHA-256 digest of a feed item GUID.
// The digest is the dedup key for the item store and must stay byte-identical
// across runs and deployments to remain compatible with already-stored items.
func HashGUID(guid string) string {
	sum := sha256.Sum256([]byte(guid))
	return hex.EncodeToString(sum[:])
}

// SynthesizeGUID builds the fallback identifier for items whose feed carries
// no stable id. Two same-titled items from one source collide and are treated
// as the same item.
func SynthesizeGUID(sourceURL, title string) string {
	return sourceURL + "#" + title
}
