package readstore

import (
	"context"

	"github.com/google/uuid"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db db.DBTX, id uuid.UUID) (db.Users, error)
	FindUserByEmail(ctx context.Context, db db.DBTX, email string) (db.Users, error)
	ListUsers(ctx context.Context, db db.DBTX, arg db.ListUsersParams) ([]db.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      db.DBTX
}

func NewUserReadStore(queries UserReadQueries, db db.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toAuthorizedUserView(row), nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func (r *UserReadStore) FindProfile(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) List(ctx context.Context, after *queries.Keyset, limit int32) ([]*queries.UserView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListUsers(ctx, r.db, db.ListUsersParams{
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUserView(row))
	}
	return views, nil
}

func toAuthorizedUserView(row db.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Role:     row.Role,
		IsActive: row.IsActive,
	}
}

func toUserView(row db.Users) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Email:     row.Email,
		Username:  row.Username,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Role:      row.Role,
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
