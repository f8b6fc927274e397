package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	username     Username
	name         FullName
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, username Username, name FullName, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		username:     username,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	username Username,
	name FullName,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		username:     username,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Principal is the user itself; a profile is owned by its holder.
func (u *User) Principal() uuid.UUID { return u.id }

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) Username() Username    { return u.username }
func (u *User) Name() FullName        { return u.name }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
