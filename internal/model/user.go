package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the principal every folder and assignment is scoped to.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}
