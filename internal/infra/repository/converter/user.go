package converter

import (
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/shared"
)

func UserToCreateParams(u *user.User) db.CreateUserParams {
	return db.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		Username:     u.Username().Value(),
		FirstName:    u.Name().First(),
		LastName:     u.Name().Last(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserSnapshotFromRow(row db.Users) (*shared.UserSnapshot, error) {
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "user %s", row.ID)
	}
	return &shared.UserSnapshot{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Role:      role,
		IsActive:  row.IsActive,
	}, nil
}
