package domain

import "fmt"

// Account represents a user row in the mscolab store
type Account struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	EmailID  string `json:"emailid" db:"emailid"`
	Password string `json:"password" db:"password"`
}

// Validate performs validation on the account fields
func (a *Account) Validate() error {
	if a.ID <= 0 {
		return fmt.Errorf("invalid account: id must be positive")
	}
	if a.Username == "" {
		return fmt.Errorf("invalid account: username is required")
	}
	if a.EmailID == "" {
		return fmt.Errorf("invalid account: emailid is required")
	}
	if a.Password == "" {
		return fmt.Errorf("invalid account: password is required")
	}
	return nil
}
