package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// RequestKey derives a stable cache key from a request and the rule
// revision it is scored against. Map keys are serialized in sorted order,
// so equal requests always hash equally.
func RequestKey(req ScoreRequest, revision string) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}
	h := sha256.New()
	h.Write(data)
	h.Write([]byte{0})
	h.Write([]byte(revision))
	return hex.EncodeToString(h.Sum(nil)), nil
}
