package readstore

import (
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// keysetParams maps a nil position to a NULL timestamp, which the list queries treat as "from the top".
func keysetParams(after *queries.Keyset) (pgtype.Timestamptz, uuid.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, uuid.Nil
	}
	return pgconv.TimeToPgtype(after.CreatedAt), after.ID
}
