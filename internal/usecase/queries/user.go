package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/infra"
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*UserView, *Cursor, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindProfile(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context, after *Keyset, limit int32) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	user, err := q.readStore.FindProfile(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (q *userQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*UserView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := ParseCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.readStore.List(ctx, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	users, next := page(rows, limit, func(u *UserView) (time.Time, uuid.UUID) { return u.CreatedAt, u.ID })
	return users, next, nil
}
