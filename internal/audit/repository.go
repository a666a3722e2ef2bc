package audit

import (
	"context"
	"fmt"

	"github.com/fkhayef/haulledger/internal/database"
)

// Recorder persists audit entries
type Recorder interface {
	Record(ctx context.Context, e *Entry) error
}

// Repository handles audit log persistence
type Repository struct {
	db database.DBTX
}

// NewRepository creates a new audit repository
func NewRepository(db database.DBTX) *Repository {
	return &Repository{db: db}
}

// Record appends an entry and fills its ID and timestamp
func (r *Repository) Record(ctx context.Context, e *Entry) error {
	query := `
		INSERT INTO audit_log (actor_id, action, entity_type, entity_id, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	if err := r.db.QueryRowContext(ctx, query, e.ActorID, e.Action, e.EntityType, e.EntityID, e.Details).Scan(&e.ID, &e.CreatedAt); err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

// List retrieves entries newest first, optionally filtered by entity type
func (r *Repository) List(ctx context.Context, entityType string, limit, offset int) ([]*Entry, int, error) {
	where := ""
	args := []any{}
	if entityType != "" {
		where = "WHERE entity_type = $1"
		args = append(args, entityType)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_log `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, actor_id, action, entity_type, entity_id, COALESCE(details, ''), created_at
		FROM audit_log
		%s
		ORDER BY id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &e.EntityType, &e.EntityID, &e.Details, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate audit entries: %w", err)
	}

	return entries, total, nil
}
