package audit

import (
	"context"

	"go.uber.org/zap"
)

// Service reads the audit log and records best-effort entries for CRUD
// operations. Settlement runs write their entry inside their own transaction.
type Service struct {
	repo *Repository
	log  *zap.Logger
}

// NewService creates a new audit service
func NewService(repo *Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Record writes e, logging instead of failing the caller when the insert
// fails.
func (s *Service) Record(ctx context.Context, e *Entry) error {
	if err := s.repo.Record(ctx, e); err != nil {
		s.log.Warn("audit entry not recorded",
			zap.String("entity_type", e.EntityType),
			zap.String("action", string(e.Action)),
			zap.Error(err),
		)
	}
	return nil
}

// List retrieves entries with pagination
func (s *Service) List(ctx context.Context, entityType string, page, perPage int) ([]*Entry, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, entityType, perPage, offset)
}
