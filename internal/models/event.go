package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRegisteredEvent is published after a user row has been stored.
type UserRegisteredEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}
