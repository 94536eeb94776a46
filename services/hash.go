package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"
)

// GenerateHash derives the content hash stamped on an issued document: a
// SHA-256 digest over the JSON-serialized submission concatenated with the
// issuance time in milliseconds, hex-encoded and truncated to the stored
// column width for the document type.
//
// The millisecond timestamp keeps two identical submissions from colliding;
// the digest makes casual forgery of a QR payload impractical.
func GenerateHash(payload interface{}, now time.Time, length int) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(append(data, []byte(strconv.FormatInt(now.UnixMilli(), 10))...))
	digest := hex.EncodeToString(sum[:])
	if length > 0 && length < len(digest) {
		digest = digest[:length]
	}
	return digest, nil
}
