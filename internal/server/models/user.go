package models

import "time"

// User is one stored registration. Timestamps are assigned by the
// repository on insert; PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Mobile       string    `json:"mobile"`
	Email        string    `json:"email"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	LoginID      string    `json:"loginId"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
