// Package checksum computes content digests recorded in the rename journal.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// SumReader streams r and returns its hex-encoded SHA-256 digest.
func SumReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
