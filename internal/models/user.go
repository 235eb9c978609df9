package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRecord is the row written to the users table on registration.
// Password always holds a hash.
type UserRecord struct {
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Aadhar   string `db:"aadhar"`
	Mobile   string `db:"mobile"`
	Address  string `db:"address"`
}

// UserDB represents a registered user read back for listing
type UserDB struct {
	UserID    uuid.UUID `json:"id" db:"id"`                 // Primary key
	Name      string    `json:"name" db:"name"`             // Full name
	Email     string    `json:"email" db:"email"`           // User email
	Mobile    string    `json:"mobile" db:"mobile"`         // Mobile number
	Address   string    `json:"address" db:"address"`       // Postal address
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Registration timestamp
}
