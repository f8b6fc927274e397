// Package access decides who may change a resource.
package access

import (
	"errors"
	"net/http"

	"travel-booking/internal/domain/user"

	"github.com/google/uuid"
)

var ErrForbidden = errors.New("you do not have permission to perform this action")

// Owned is implemented by every aggregate that belongs to a user.
type Owned interface {
	Principal() uuid.UUID
}

type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func NewActor(id uuid.UUID, role user.Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsAdmin() bool { return a.Role.IsAdmin() }

func (a Actor) IsAnonymous() bool { return a.ID == uuid.Nil }

// CanModify holds for admins and for the resource's principal.
func CanModify(actor Actor, res Owned) bool {
	if actor.ID == uuid.Nil {
		return false
	}
	return actor.IsAdmin() || res.Principal() == actor.ID
}

func IsSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// Authorize applies CanModify to unsafe methods only.
func Authorize(actor Actor, method string, res Owned) error {
	if IsSafeMethod(method) || CanModify(actor, res) {
		return nil
	}
	return ErrForbidden
}

// Principal adapts a bare owner id for callers that only hold a snapshot.
type Principal uuid.UUID

func (p Principal) Principal() uuid.UUID { return uuid.UUID(p) }
