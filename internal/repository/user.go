package repository

import (
	"context"

	"vocabapi/internal/model"
)

// UserRepository stores the principals folders and assignments belong to.
type UserRepository interface {
	// FindByEmail returns the user with the given email or sql.ErrNoRows.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// Create inserts the user. If a user with the same email already exists the stored
	// row is returned instead, so concurrent first requests converge on one record.
	Create(ctx context.Context, u *model.User) (*model.User, error)
}
