package pagination

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is used when a caller asks for a non-positive page size.
	DefaultLimit = 50
	// MaxLimit caps any requested page size.
	MaxLimit = 500
)

// Normalize clamps limit into [1, MaxLimit] (falling back to def when non-positive) and offset to >= 0.
func Normalize(limit, offset, def int) (int, int) {
	if def <= 0 {
		def = DefaultLimit
	}
	if limit <= 0 {
		limit = def
	}
	limit = min(limit, MaxLimit)
	return limit, max(offset, 0)
}

// PageCount returns the number of pages needed for total items.
func PageCount(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// NextOffset returns the offset of the following page, or -1 when the current page is the last one.
func NextOffset(offset, limit, total int) int {
	next := offset + limit
	if next >= total {
		return -1
	}
	return next
}

// Fingerprint hashes the filter parts a token belongs to, so a token cannot be replayed against a
// different filter.
func Fingerprint(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:8])
}

// EncodeOffsetToken creates an opaque token from an offset and a filter fingerprint.
func EncodeOffsetToken(offset int, fingerprint string) string {
	return EncodeMultiFieldToken(strconv.Itoa(offset), fingerprint)
}

// DecodeOffsetToken parses a token and checks it was issued for the same fingerprint.
func DecodeOffsetToken(token string, fingerprint string) (int, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	offset, err := strconv.Atoi(parts[0])
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (offset parse)")
	}
	if parts[1] != fingerprint {
		return 0, fmt.Errorf("pagination token was issued for a different filter")
	}
	return offset, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}
