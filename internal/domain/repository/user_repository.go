package repository

import (
	"context"
	"errors"

	"github.com/chalkboard/user-service/internal/domain/entity"
)

// ErrUserNotFound is returned by GetByID, Update and Delete when no row
// matches the given id. Only GetAll may legitimately come back empty.
var ErrUserNotFound = errors.New("user not found")

// ConflictError reports a unique-constraint violation. Field names the
// offending column ("username" or "email") when it can be determined.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return "unique constraint violation"
	}
	return e.Field + " already exists"
}

// UpdateFields carries the subset of columns a caller wants changed.
// Nil pointers mean "leave as is".
type UpdateFields struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
}

// UserRepository is the sole boundary between the service layer and the
// persistent store.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, id int64, fields UpdateFields) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}
