package commands

import (
	"context"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPasswordHashing = errs.New("failed to hash password")

type RegisterUserInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type UserCommands interface {
	Register(ctx context.Context, in RegisterUserInput) (uuid.UUID, error)
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
	clock  clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, hasher PasswordHasher, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, hasher: hasher, clock: clk}
}

func (uc *userCommandsImpl) Register(ctx context.Context, in RegisterUserInput) (uuid.UUID, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return uuid.Nil, err
	}
	username, err := user.NewUsername(in.Username)
	if err != nil {
		return uuid.Nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return uuid.Nil, err
	}
	name, err := user.NewFullName(in.FirstName, in.LastName)
	if err != nil {
		return uuid.Nil, err
	}

	role := user.RoleGuest
	if in.Role != "" {
		if role, err = user.NewRole(in.Role); err != nil {
			return uuid.Nil, err
		}
	}
	if role.IsAdmin() {
		return uuid.Nil, ErrRoleNotAllowed
	}

	hash, err := uc.hasher.Hash(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPasswordHashing)
	}

	u := user.NewUser(email, username, name, hash, role, uc.clock.Now())
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrUserAlreadyExists
		}
		return uuid.Nil, err
	}
	return u.ID(), nil
}
