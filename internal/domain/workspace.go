package domain

import "fmt"

// Project is a shared collaborative unit. Path doubles as the name of its
// workspace directory on disk.
type Project struct {
	ID          int64  `json:"id" db:"id"`
	Path        string `json:"path" db:"path"`
	Description string `json:"description" db:"description"`
}

// Validate performs validation on the project fields
func (p *Project) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("invalid project: id must be positive")
	}
	if p.Path == "" {
		return fmt.Errorf("invalid project: path is required")
	}
	return nil
}

type Role string

const (
	RoleCreator      Role = "creator"
	RoleCollaborator Role = "collaborator"
	RoleViewer       Role = "viewer"
)

// IsValid reports whether the role is one of the known access levels
func (r Role) IsValid() bool {
	switch r {
	case RoleCreator, RoleCollaborator, RoleViewer:
		return true
	}
	return false
}

// Permission links an account to a project under a role
type Permission struct {
	ID          int64 `json:"id" db:"id"`
	UserID      int64 `json:"u_id" db:"u_id"`
	ProjectID   int64 `json:"p_id" db:"p_id"`
	AccessLevel Role  `json:"access_level" db:"access_level"`
}

// Validate performs validation on the permission fields
func (p *Permission) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("invalid permission: id must be positive")
	}
	if p.UserID <= 0 {
		return fmt.Errorf("invalid permission: u_id is required")
	}
	if p.ProjectID <= 0 {
		return fmt.Errorf("invalid permission: p_id is required")
	}
	if !p.AccessLevel.IsValid() {
		return fmt.Errorf("invalid permission: access_level must be one of creator, collaborator, viewer")
	}
	return nil
}
