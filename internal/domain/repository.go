package domain

import (
	"context"
)

//go:generate mockgen -destination mocks/mock_seed_writer.go -package mocks github.com/Open-MSS/mscolab-provision/internal/domain SeedWriter

// SeedWriter is the row-insertion port the reference data seeder writes through.
// Inserts are buffered in the current batch until Commit.
type SeedWriter interface {
	InsertAccount(ctx context.Context, account *Account) error
	InsertProject(ctx context.Context, project *Project) error
	InsertPermission(ctx context.Context, permission *Permission) error
	Commit(ctx context.Context) error
}
