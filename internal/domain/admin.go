package domain

import "time"

// Admin is the tenant owning items and invoices.
type Admin struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
