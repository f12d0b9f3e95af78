package database

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Open-MSS/mscolab-provision/internal/database/schema"
	"github.com/Open-MSS/mscolab-provision/internal/domain"
)

// StatementBuilder returns a squirrel builder using the backend's placeholder style
func StatementBuilder(kind domain.BackendKind) sq.StatementBuilderType {
	if kind == domain.BackendPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// InitializeDatabase creates all mscolab tables if they don't exist
func InitializeDatabase(db *sql.DB, kind domain.BackendKind) error {
	queries := schema.TableDefinitions(kind)
	if queries == nil {
		return &domain.ErrUnsupportedBackend{Scheme: kind.String()}
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// CleanDatabase drops all tables in reverse order
func CleanDatabase(db *sql.DB, kind domain.BackendKind) error {
	for i := len(schema.TableNames) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", schema.TableNames[i])
		if kind == domain.BackendPostgres {
			query += " CASCADE"
		}
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", schema.TableNames[i], err)
		}
	}
	return nil
}

// SchemaInstalled reports whether the users table is already present
func SchemaInstalled(db *sql.DB, kind domain.BackendKind) (bool, error) {
	builder := StatementBuilder(kind).Select("COUNT(*)")

	switch kind {
	case domain.BackendSQLite:
		builder = builder.From("sqlite_master").
			Where(sq.Eq{"type": "table", "name": schema.TableNames[0]})
	case domain.BackendPostgres:
		builder = builder.From("information_schema.tables").
			Where("table_schema = current_schema()").
			Where(sq.Eq{"table_name": schema.TableNames[0]})
	case domain.BackendMySQL:
		builder = builder.From("information_schema.tables").
			Where("table_schema = DATABASE()").
			Where(sq.Eq{"table_name": schema.TableNames[0]})
	default:
		return false, &domain.ErrUnsupportedBackend{Scheme: kind.String()}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build schema check: %w", err)
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check schema: %w", err)
	}
	return count > 0, nil
}

// CountRows returns the number of rows in a table
func CountRows(db *sql.DB, kind domain.BackendKind, table string) (int, error) {
	query, args, err := StatementBuilder(kind).Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}
