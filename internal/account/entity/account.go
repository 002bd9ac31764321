package entity

import "time"

// Account is the read-model snapshot of an account. The write model emits
// events; downstream consumers own the authoritative store, this service
// only reads.
type Account struct {
	ID          string
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string
	Password    string
	Disabled    bool
	Admin       bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Role returns the authorization role for the account holder.
func (a Account) Role() string {
	if a.Admin {
		return RoleAdmin
	}

	return RoleUser
}
