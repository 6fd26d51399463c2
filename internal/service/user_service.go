package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"user-directory/internal/domain"
	"user-directory/internal/repository"
)

// Candidate carries unvalidated input submitted for Create or Update.
type Candidate struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

// UserService exposes the directory operations backed by the repository.
//
// Business outcomes are reported as typed errors: ErrInvalidID,
// *ValidationError, ErrUserNotFound and ErrEmailTaken. Anything else is an
// unexpected fault for the transport boundary to catch.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, candidate Candidate) (*domain.User, error)
	Update(ctx context.Context, id int64, candidate Candidate) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	users  repository.UserRepository
	logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, logger *logrus.Logger) UserService {
	if logger == nil {
		logger = logrus.New()
	}
	return &userService{
		users:  users,
		logger: logger,
	}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.WithField("count", len(users)).Info("listed users")
	return users, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	user, err := s.users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, candidate Candidate) (*domain.User, error) {
	normalized, verr := validate(candidate)
	if verr != nil {
		return nil, verr
	}

	user := &domain.User{
		FirstName:   normalized.FirstName,
		LastName:    normalized.LastName,
		Email:       normalized.Email,
		PhoneNumber: normalized.PhoneNumber,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"id": user.ID, "email": user.Email}).Info("created user")
	return user, nil
}

func (s *userService) Update(ctx context.Context, id int64, candidate Candidate) (*domain.User, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	normalized, verr := validate(candidate)
	if verr != nil {
		return nil, verr
	}

	user := &domain.User{
		ID:          id,
		FirstName:   normalized.FirstName,
		LastName:    normalized.LastName,
		Email:       normalized.Email,
		PhoneNumber: normalized.PhoneNumber,
	}

	if err := s.users.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.logger.WithField("id", user.ID).Info("updated user")
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	s.logger.WithField("id", id).Info("deleted user")
	return nil
}
