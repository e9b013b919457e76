package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalkboard/user-service/internal/domain/entity"
	repo "github.com/chalkboard/user-service/internal/domain/repository"
)

// ---- fakes ----

type fakeRepo struct {
	createErr error
	createdID int64

	getResp *entity.User
	getErr  error

	allResp []*entity.User
	allErr  error

	updateResp   *entity.User
	updateErr    error
	updateFields repo.UpdateFields
	updateID     int64

	deleteErr error
	deletedID int64
}

func (f *fakeRepo) Create(ctx context.Context, u *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = f.createdID
	now := time.Now().UTC()
	u.DateCreated = now
	u.DateUpdated = now
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return f.getResp, f.getErr
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]*entity.User, error) {
	return f.allResp, f.allErr
}

func (f *fakeRepo) Update(ctx context.Context, id int64, fields repo.UpdateFields) (*entity.User, error) {
	f.updateID = id
	f.updateFields = fields
	return f.updateResp, f.updateErr
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

// ---- tests ----

func TestCreateUser(t *testing.T) {
	f := &fakeRepo{createdID: 42}
	svc := NewService(f, nil)

	u, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username:  "jdoe",
		Email:     "j@x.com",
		FirstName: "John",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), u.ID)
	assert.Equal(t, "jdoe", u.Username)
	assert.Equal(t, "j@x.com", u.Email)
	assert.Equal(t, "John", u.FirstName)
	assert.Equal(t, "Doe", u.LastName)
	assert.True(t, u.DateCreated.Equal(u.DateUpdated))
}

func TestCreateUserRepoError(t *testing.T) {
	f := &fakeRepo{createErr: &repo.ConflictError{Field: "email"}}
	svc := NewService(f, nil)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{Username: "jdoe"})
	var conflict *repo.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "email", conflict.Field)
}

func TestGetUserNotFound(t *testing.T) {
	f := &fakeRepo{getErr: repo.ErrUserNotFound}
	svc := NewService(f, nil)

	_, err := svc.GetUser(context.Background(), 999)
	assert.ErrorIs(t, err, repo.ErrUserNotFound)
}

func TestGetUsersEmpty(t *testing.T) {
	f := &fakeRepo{allResp: []*entity.User{}}
	svc := NewService(f, nil)

	users, err := svc.GetUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUpdateUserForwardsFieldSubset(t *testing.T) {
	email := "new@x.com"
	f := &fakeRepo{updateResp: &entity.User{ID: 1, Email: email}}
	svc := NewService(f, nil)

	u, err := svc.UpdateUser(context.Background(), 1, UpdateUserInput{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, email, u.Email)
	assert.Equal(t, int64(1), f.updateID)
	require.NotNil(t, f.updateFields.Email)
	assert.Equal(t, email, *f.updateFields.Email)
	assert.Nil(t, f.updateFields.Username)
	assert.Nil(t, f.updateFields.FirstName)
	assert.Nil(t, f.updateFields.LastName)
}

func TestUpdateUserNotFound(t *testing.T) {
	f := &fakeRepo{updateErr: repo.ErrUserNotFound}
	svc := NewService(f, nil)

	_, err := svc.UpdateUser(context.Background(), 999, UpdateUserInput{})
	assert.ErrorIs(t, err, repo.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	f := &fakeRepo{}
	svc := NewService(f, nil)

	require.NoError(t, svc.DeleteUser(context.Background(), 7))
	assert.Equal(t, int64(7), f.deletedID)
}

func TestDeleteUserNotFound(t *testing.T) {
	f := &fakeRepo{deleteErr: repo.ErrUserNotFound}
	svc := NewService(f, nil)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 999), repo.ErrUserNotFound)
}
