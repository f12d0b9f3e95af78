package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/Open-MSS/mscolab-provision/internal/domain"
	"github.com/Open-MSS/mscolab-provision/pkg/logger"
)

const (
	// FileDataDir holds one git repository per project workspace
	FileDataDir = "filedata"
	// StubFileName is the flight track committed into each workspace
	StubFileName = "main.ftml"
	// InitialCommitMessage is the message of the only commit of a fresh workspace
	InitialCommitMessage = "initial commit"
)

// AuxiliaryWorkspaces are scaffolded next to the seeded projects for the
// collaboration server's own test suite
var AuxiliaryWorkspaces = []string{"Admin_Test", "test_mscolab"}

// WorkspaceNames returns the seeded project paths followed by the auxiliary workspaces
func WorkspaceNames(dataset domain.Dataset) []string {
	return append(dataset.ProjectPaths(), AuxiliaryWorkspaces...)
}

// WorkspaceScaffolder builds the per-project git workspaces under a data directory
type WorkspaceScaffolder struct {
	stubCode string
	names    []string
	logger   logger.Logger
	now      func() time.Time
}

// NewWorkspaceScaffolder creates a scaffolder writing stubCode into each named workspace
func NewWorkspaceScaffolder(stubCode string, logger logger.Logger, names []string) *WorkspaceScaffolder {
	return &WorkspaceScaffolder{
		stubCode: stubCode,
		names:    names,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *WorkspaceScaffolder) signature() *object.Signature {
	return &object.Signature{
		Name:  "mscolab",
		Email: "mscolab@localhost",
		When:  s.now(),
	}
}

// Scaffold replaces <dataDir>/filedata with one freshly initialised
// repository per workspace, each holding a single commit of the stub file.
func (s *WorkspaceScaffolder) Scaffold(dataDir string) error {
	root := filepath.Join(dataDir, FileDataDir)
	if err := os.RemoveAll(root); err != nil {
		return fmt.Errorf("failed to remove %s: %w", root, err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", root, err)
	}

	for _, name := range s.names {
		if err := s.scaffoldWorkspace(filepath.Join(root, name)); err != nil {
			return fmt.Errorf("failed to scaffold workspace %s: %w", name, err)
		}
		s.logger.WithField("workspace", name).Debug("Workspace created")
	}

	s.logger.WithFields(map[string]interface{}{
		"path":  root,
		"count": len(s.names),
	}).Info("Workspaces scaffolded")
	return nil
}

func (s *WorkspaceScaffolder) scaffoldWorkspace(dir string) error {
	if err := os.Mkdir(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, StubFileName), []byte(s.stubCode), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", StubFileName, err)
	}

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return fmt.Errorf("failed to init repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}
	if _, err := wt.Add(StubFileName); err != nil {
		return fmt.Errorf("failed to stage %s: %w", StubFileName, err)
	}
	if _, err := wt.Commit(InitialCommitMessage, &git.CommitOptions{Author: s.signature()}); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// EnsureLayout creates <dataDir>/filedata when missing and leaves existing content alone
func (s *WorkspaceScaffolder) EnsureLayout(dataDir string) error {
	root := filepath.Join(dataDir, FileDataDir)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", root, err)
	}
	return nil
}
