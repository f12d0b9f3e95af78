package domain

import "fmt"

// Dataset is the fixed set of rows written by test-mode provisioning.
// Accounts and projects are listed before the permissions that reference them.
type Dataset struct {
	Accounts    []Account
	Projects    []Project
	Permissions []Permission
}

// ReferenceDataset returns the deterministic seed rows. Higher level test
// suites depend on these exact ids and values.
func ReferenceDataset() Dataset {
	return Dataset{
		Accounts: []Account{
			{ID: 8, Username: "a", EmailID: "a", Password: "a"},
			{ID: 9, Username: "b", EmailID: "b", Password: "b"},
			{ID: 10, Username: "c", EmailID: "c", Password: "c"},
			{ID: 11, Username: "d", EmailID: "d", Password: "d"},
		},
		Projects: []Project{
			{ID: 1, Path: "one", Description: "a, b"},
			{ID: 2, Path: "two", Description: "b, c"},
			{ID: 3, Path: "three", Description: "a, c"},
			{ID: 4, Path: "four", Description: "d"},
		},
		Permissions: []Permission{
			{ID: 1, UserID: 8, ProjectID: 1, AccessLevel: RoleCreator},
			{ID: 2, UserID: 9, ProjectID: 1, AccessLevel: RoleCollaborator},
			{ID: 3, UserID: 9, ProjectID: 2, AccessLevel: RoleCreator},
			{ID: 4, UserID: 10, ProjectID: 2, AccessLevel: RoleCollaborator},
			{ID: 5, UserID: 10, ProjectID: 3, AccessLevel: RoleCreator},
			{ID: 6, UserID: 8, ProjectID: 3, AccessLevel: RoleCollaborator},
			{ID: 7, UserID: 10, ProjectID: 1, AccessLevel: RoleViewer},
			{ID: 8, UserID: 11, ProjectID: 4, AccessLevel: RoleCreator},
		},
	}
}

// ProjectPaths returns the project paths in seed order
func (d Dataset) ProjectPaths() []string {
	paths := make([]string, 0, len(d.Projects))
	for _, p := range d.Projects {
		paths = append(paths, p.Path)
	}
	return paths
}

// Validate checks every row, id uniqueness per table, and that each
// permission references an account and a project of the same dataset.
func (d Dataset) Validate() error {
	accounts := make(map[int64]bool, len(d.Accounts))
	for i := range d.Accounts {
		a := &d.Accounts[i]
		if err := a.Validate(); err != nil {
			return err
		}
		if accounts[a.ID] {
			return NewValidationError(fmt.Sprintf("duplicate account id %d", a.ID))
		}
		accounts[a.ID] = true
	}

	projects := make(map[int64]bool, len(d.Projects))
	for i := range d.Projects {
		p := &d.Projects[i]
		if err := p.Validate(); err != nil {
			return err
		}
		if projects[p.ID] {
			return NewValidationError(fmt.Sprintf("duplicate project id %d", p.ID))
		}
		projects[p.ID] = true
	}

	permissions := make(map[int64]bool, len(d.Permissions))
	for i := range d.Permissions {
		p := &d.Permissions[i]
		if err := p.Validate(); err != nil {
			return err
		}
		if permissions[p.ID] {
			return NewValidationError(fmt.Sprintf("duplicate permission id %d", p.ID))
		}
		permissions[p.ID] = true
		if !accounts[p.UserID] {
			return NewValidationError(fmt.Sprintf("permission %d references unknown account %d", p.ID, p.UserID))
		}
		if !projects[p.ProjectID] {
			return NewValidationError(fmt.Sprintf("permission %d references unknown project %d", p.ID, p.ProjectID))
		}
	}
	return nil
}
