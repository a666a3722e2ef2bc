package user

import (
	"context"
	"fmt"

	"github.com/fkhayef/haulledger/internal/audit"
	"github.com/fkhayef/haulledger/internal/validation"
	"github.com/fkhayef/haulledger/pkg/apperr"
	"github.com/fkhayef/haulledger/pkg/middleware"
)

// Common errors
var (
	ErrUserNotFound      = apperr.NotFound("user not found")
	ErrEmailAlreadyInUse = apperr.Conflict("email already in use")
)

// Service handles user business logic
type Service struct {
	repo  *Repository
	audit audit.Recorder
}

// NewService creates a new user service with repository dependency injected
func NewService(repo *Repository, auditor audit.Recorder) *Service {
	return &Service{repo: repo, audit: auditor}
}

// Create creates a new user
func (s *Service) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyInUse
	}

	u, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionCreate, audit.EntityUser, u.ID, u.Email))
	return u, nil
}

// GetByID retrieves a user by their ID
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}
	return u, nil
}

// List retrieves all users with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*User, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}

// Update modifies an existing user
func (s *Service) Update(ctx context.Context, id int64, req *UpdateUserRequest) (*User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	u, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionUpdate, audit.EntityUser, u.ID, u.Email))
	return u, nil
}

// Delete removes a user
func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), audit.ActionDelete, audit.EntityUser, id, ""))
	return nil
}
