package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, username, first_name, last_name, password_hash, role, is_active, last_login, created_at, updated_at`

func scanUser(row pgx.Row) (Users, error) {
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Username,
		&i.FirstName,
		&i.LastName,
		&i.PasswordHash,
		&i.Role,
		&i.IsActive,
		&i.LastLogin,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createUser = `INSERT INTO users (id, email, username, first_name, last_name, password_hash, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + userColumns

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (Users, error) {
	row := db.QueryRow(ctx, createUser,
		arg.ID,
		arg.Email,
		arg.Username,
		arg.FirstName,
		arg.LastName,
		arg.PasswordHash,
		arg.Role,
		arg.IsActive,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanUser(row)
}

const findUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByID, id))
}

const findUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByEmail, email))
}

const updateLastLogin = `UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1`

func (q *Queries) UpdateLastLogin(ctx context.Context, db DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, updateLastLogin, id, at)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listUsers = `SELECT ` + userColumns + ` FROM users
WHERE $1::timestamptz IS NULL OR (created_at, id) < ($1::timestamptz, $2::uuid)
ORDER BY created_at DESC, id DESC
LIMIT $3`

type ListUsersParams struct {
	AfterCreatedAt pgtype.Timestamptz
	AfterID        uuid.UUID
	Limit          int32
}

func (q *Queries) ListUsers(ctx context.Context, db DBTX, arg ListUsersParams) ([]Users, error) {
	rows, err := db.Query(ctx, listUsers, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Users
	for rows.Next() {
		i, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
