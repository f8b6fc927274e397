package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.New("invalid cursor")

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Keyset is a position in (created_at DESC, id DESC) order. Pages start strictly after it.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	cursorData := CursorVersionV1 + ":" + strconv.FormatInt(t.UnixMicro(), 10) + "-" + id.String()
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, errs.New("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor is not base64url")
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("unsupported cursor version")
	}

	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, errs.New("invalid cursor format: expected '<micros>-<uuid>'")
	}

	micros, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid timestamp")
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid UUID")
	}

	return time.UnixMicro(micros).UTC(), id, nil
}

// ParseCursor returns nil for the first page.
func ParseCursor(c *Cursor) (*Keyset, error) {
	if c == nil || c.After == "" {
		return nil, nil
	}
	t, id, err := DecodeAfterCursor(c.After)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	return &Keyset{CreatedAt: t, ID: id}, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// page trims a limit+1 fetch to limit rows and builds the next cursor from the last kept row.
func page[T any](rows []T, limit int, key func(T) (time.Time, uuid.UUID)) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	t, id := key(rows[limit-1])
	return rows, &Cursor{After: EncodeAfterCursor(t, id)}
}
