// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record every other entity hangs off of. Areas and
// sensors both carry a direct reference back to their owning user.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // Unique login identifier.
	PasswordHash string    `json:"-"`     // Never serialized to clients.
	Phone        *string   `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
