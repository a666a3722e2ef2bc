package company

import (
	"context"

	"github.com/fkhayef/haulledger/internal/audit"
	"github.com/fkhayef/haulledger/internal/validation"
	"github.com/fkhayef/haulledger/pkg/apperr"
	"github.com/fkhayef/haulledger/pkg/middleware"
)

var ErrCompanyNotFound = apperr.NotFound("company profile not configured")

// Service manages the single company profile
type Service struct {
	repo  *Repository
	audit audit.Recorder
}

// NewService creates a new company service
func NewService(repo *Repository, auditor audit.Recorder) *Service {
	return &Service{repo: repo, audit: auditor}
}

// Get returns the company profile
func (s *Service) Get(ctx context.Context) (*Company, error) {
	c, err := s.repo.First(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCompanyNotFound
	}
	return c, nil
}

// Upsert creates the profile on first use and replaces it afterwards
func (s *Service) Upsert(ctx context.Context, req *UpsertCompanyRequest) (*Company, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.First(ctx)
	if err != nil {
		return nil, err
	}

	var c *Company
	action := audit.ActionUpdate
	if existing == nil {
		action = audit.ActionCreate
		c, err = s.repo.Create(ctx, req)
	} else {
		c, err = s.repo.Update(ctx, existing.ID, req)
	}
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.NewEntry(middleware.ActorIDPtr(ctx), action, audit.EntityCompany, c.ID, c.CompanyName))
	return c, nil
}
