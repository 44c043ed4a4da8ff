package domain

import "time"

// Customer is a wholesale (B2B) buyer account. Accounts start in the pending
// state and must be approved before they can log in.
type Customer struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Company      string    `json:"company,omitempty"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"createdAt"`
}
