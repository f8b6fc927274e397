package repository

import (
	"context"
	"time"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/infra/repository/converter"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db db.DBTX, arg db.CreateUserParams) (db.Users, error)
	UpdateLastLogin(ctx context.Context, db db.DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      db.DBTX
}

func NewUserRepository(queries UserWriteQueries, db db.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error {
	n, err := r.queries.UpdateLastLogin(ctx, tx, userID, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
