package service

import (
	"context"
	"fmt"

	"github.com/Open-MSS/mscolab-provision/internal/domain"
	"github.com/Open-MSS/mscolab-provision/pkg/logger"
)

// SeedService writes the reference dataset through a domain.SeedWriter
type SeedService struct {
	logger  logger.Logger
	dataset domain.Dataset
}

// NewSeedService creates a seeder for the reference dataset
func NewSeedService(logger logger.Logger) *SeedService {
	return NewSeedServiceWithDataset(logger, domain.ReferenceDataset())
}

// NewSeedServiceWithDataset creates a seeder for an arbitrary dataset
func NewSeedServiceWithDataset(logger logger.Logger, dataset domain.Dataset) *SeedService {
	return &SeedService{
		logger:  logger,
		dataset: dataset,
	}
}

// Dataset returns the rows this seeder writes
func (s *SeedService) Dataset() domain.Dataset {
	return s.dataset
}

// Seed inserts accounts one commit at a time, then all projects in a single
// commit, then all permissions in a single commit. Ids are written as given.
func (s *SeedService) Seed(ctx context.Context, w domain.SeedWriter) error {
	if err := s.dataset.Validate(); err != nil {
		return err
	}

	for i := range s.dataset.Accounts {
		account := &s.dataset.Accounts[i]
		if err := w.InsertAccount(ctx, account); err != nil {
			return err
		}
		if err := w.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit account %d: %w", account.ID, err)
		}
	}
	s.logger.WithField("count", len(s.dataset.Accounts)).Debug("Seeded accounts")

	for i := range s.dataset.Projects {
		if err := w.InsertProject(ctx, &s.dataset.Projects[i]); err != nil {
			return err
		}
	}
	if err := w.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit projects: %w", err)
	}
	s.logger.WithField("count", len(s.dataset.Projects)).Debug("Seeded projects")

	for i := range s.dataset.Permissions {
		if err := w.InsertPermission(ctx, &s.dataset.Permissions[i]); err != nil {
			return err
		}
	}
	if err := w.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit permissions: %w", err)
	}
	s.logger.WithField("count", len(s.dataset.Permissions)).Debug("Seeded permissions")

	return nil
}
