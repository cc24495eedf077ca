package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// DefaultLimit is the page size used when a caller passes none.
const DefaultLimit = 20

// EncodeToken builds the opaque cursor for keyset pagination ordered by (sortDate DESC, createdAt DESC).
// The token identifies the last row of the page just returned.
func EncodeToken(sortDate time.Time, createdAt time.Time) string {
	tokenStr := fmt.Sprintf("%s|%s", sortDate.Format(timeFormat), createdAt.Format(timeFormat))
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (time.Time, time.Time, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token format (split)")
	}

	sortDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token format (sort date parse): %w", err)
	}

	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return sortDate, createdAt, nil
}

// NormalizeLimit applies DefaultLimit to non-positive limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
