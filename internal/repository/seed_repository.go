package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Open-MSS/mscolab-provision/internal/database"
	"github.com/Open-MSS/mscolab-provision/internal/domain"
)

// SeedRepository implements domain.SeedWriter on a database/sql handle.
// Inserts join an open transaction that is started on demand and ended by
// Commit, so every Commit marks one batch boundary.
type SeedRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	tx      *sql.Tx
}

// NewSeedRepository creates a SeedRepository speaking the backend's placeholder dialect
func NewSeedRepository(db *sql.DB, kind domain.BackendKind) *SeedRepository {
	return &SeedRepository{
		db:      db,
		builder: database.StatementBuilder(kind),
	}
}

// NewSeedWriter adapts NewSeedRepository to the domain.SeedWriter port
func NewSeedWriter(db *sql.DB, kind domain.BackendKind) domain.SeedWriter {
	return NewSeedRepository(db, kind)
}

func (r *SeedRepository) begin(ctx context.Context) (*sql.Tx, error) {
	if r.tx != nil {
		return r.tx, nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	r.tx = tx
	return tx, nil
}

func (r *SeedRepository) exec(ctx context.Context, insert sq.InsertBuilder) error {
	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

// InsertAccount adds a user row with its explicit id
func (r *SeedRepository) InsertAccount(ctx context.Context, account *domain.Account) error {
	insert := r.builder.Insert("users").
		Columns("id", "username", "emailid", "password").
		Values(account.ID, account.Username, account.EmailID, account.Password)

	if err := r.exec(ctx, insert); err != nil {
		return fmt.Errorf("failed to insert account %d: %w", account.ID, err)
	}
	return nil
}

// InsertProject adds a project row with its explicit id
func (r *SeedRepository) InsertProject(ctx context.Context, project *domain.Project) error {
	insert := r.builder.Insert("projects").
		Columns("id", "path", "description").
		Values(project.ID, project.Path, project.Description)

	if err := r.exec(ctx, insert); err != nil {
		return fmt.Errorf("failed to insert project %d: %w", project.ID, err)
	}
	return nil
}

// InsertPermission adds a permission row with its explicit id
func (r *SeedRepository) InsertPermission(ctx context.Context, permission *domain.Permission) error {
	insert := r.builder.Insert("permissions").
		Columns("id", "u_id", "p_id", "access_level").
		Values(permission.ID, permission.UserID, permission.ProjectID, string(permission.AccessLevel))

	if err := r.exec(ctx, insert); err != nil {
		return fmt.Errorf("failed to insert permission %d: %w", permission.ID, err)
	}
	return nil
}

// Commit ends the current batch. It is a no-op when nothing is pending.
func (r *SeedRepository) Commit(ctx context.Context) error {
	if r.tx == nil {
		return nil
	}
	tx := r.tx
	r.tx = nil
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback discards the pending batch, if any
func (r *SeedRepository) Rollback() error {
	if r.tx == nil {
		return nil
	}
	tx := r.tx
	r.tx = nil
	return tx.Rollback()
}
