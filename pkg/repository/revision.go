package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/agentui/pkg/settings"
)

// RevisionRepository journals applied settings revisions
type RevisionRepository struct {
	db *sqlx.DB
}

type revisionRow struct {
	ID        int64     `db:"id"`
	Revision  int64     `db:"revision"`
	Record    string    `db:"record"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewRevisionRepository creates a new revision repository
func NewRevisionRepository(db *sqlx.DB) *RevisionRepository {
	return &RevisionRepository{db: db}
}

// AddRevision stores a revision, retrying while the database is locked
func (r *RevisionRepository) AddRevision(ctx context.Context, rev settings.Revision) error {
	data, err := json.Marshal(rev.Record)
	if err != nil {
		return fmt.Errorf("marshal settings record: %w", err)
	}

	row := revisionRow{Revision: rev.Revision, Record: string(data), UpdatedAt: rev.UpdatedAt.UTC()}
	query := `INSERT INTO settings_revisions (revision, record, updated_at) VALUES (:revision, :record, :updated_at)`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("add settings revision: %w", err)}
		}
		return nil
	}, errCritical)
}

// ListRevisions returns up to limit revisions, newest first
func (r *RevisionRepository) ListRevisions(ctx context.Context, limit int) ([]settings.Revision, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []revisionRow
	query := `SELECT id, revision, record, updated_at FROM settings_revisions ORDER BY revision DESC, id DESC LIMIT ?`
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("list settings revisions: %w", err)
	}

	res := make([]settings.Revision, 0, len(rows))
	for _, row := range rows {
		var rec settings.Record
		if err := json.Unmarshal([]byte(row.Record), &rec); err != nil {
			return nil, fmt.Errorf("unmarshal settings revision %d: %w", row.Revision, err)
		}
		res = append(res, settings.Revision{Revision: row.Revision, Record: rec, UpdatedAt: row.UpdatedAt})
	}
	return res, nil
}

// Reset drops all journaled revisions, used on startup so the journal matches the fresh record
func (r *RevisionRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM settings_revisions"); err != nil {
		return fmt.Errorf("reset settings revisions: %w", err)
	}
	return nil
}
