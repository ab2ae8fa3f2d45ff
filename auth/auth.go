// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"

	"github.com/google/uuid"
)

// NewDecisionID returns a random UUID for a new decision.
func NewDecisionID() string {
	return uuid.NewString()
}

// IsDecisionID reports whether id looks like an ID from NewDecisionID.
func IsDecisionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ShareSlug creates a short, deterministic URL slug for a decision
// Uses HMAC for determinism and base62 encoding for URL-friendliness
func ShareSlug(decisionID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(decisionID))
	sum := h.Sum(nil)

	return base62Encode(sum[:8])
}

// MatchShareSlug reports whether slug was issued for decisionID.
func MatchShareSlug(decisionID, slug, salt string) bool {
	return hmac.Equal([]byte(slug), []byte(ShareSlug(decisionID, salt)))
}

// base62Encode converts up to 8 bytes to base62 (0-9, a-z, A-Z)
func base62Encode(data []byte) string {
	const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	var num uint64
	for i := 0; i < len(data) && i < 8; i++ {
		num = num<<8 | uint64(data[i])
	}

	if num == 0 {
		return "0"
	}

	result := make([]byte, 0, 11) // max length for uint64
	for num > 0 {
		result = append(result, base62Chars[num%62])
		num /= 62
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return string(result)
}
