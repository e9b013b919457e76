package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/chalkboard/user-service/internal/domain/entity"
	repo "github.com/chalkboard/user-service/internal/domain/repository"
)

type Service struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: r, Logger: logger}
}

type CreateUserInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// UpdateUserInput holds the caller-specified subset of fields; nil means
// the field was not present in the request.
type UpdateUserInput struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
}

func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	u := &entity.User{
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user created")
	}
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) GetUsers(ctx context.Context) ([]*entity.User, error) {
	return s.Repo.GetAll(ctx)
}

func (s *Service) UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (*entity.User, error) {
	u, err := s.Repo.Update(ctx, id, repo.UpdateFields{
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user updated")
	}
	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user deleted")
	}
	return nil
}
