package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalkboard/user-service/internal/domain/repository"
)

func TestTranslateErrorUniqueViolation(t *testing.T) {
	cases := []struct {
		name       string
		constraint string
		field      string
	}{
		{"username index", "users_username_key", "username"},
		{"email index", "users_email_key", "email"},
		{"unrecognized constraint", "users_something_key", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := translateError(&pgconn.PgError{Code: "23505", ConstraintName: tc.constraint})
			var conflict *repository.ConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, tc.field, conflict.Field)
		})
	}
}

func TestTranslateErrorPassesThroughOtherErrors(t *testing.T) {
	inner := errors.New("connection refused")
	assert.Same(t, inner, translateError(inner))

	pgErr := &pgconn.PgError{Code: "23503"} // foreign key, not unique
	assert.Same(t, error(pgErr), translateError(pgErr))
}

func TestConflictErrorMessage(t *testing.T) {
	assert.Equal(t, "username already exists", (&repository.ConflictError{Field: "username"}).Error())
	assert.Equal(t, "unique constraint violation", (&repository.ConflictError{}).Error())
}
