// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, memory) and contain no business logic.
// A missing row is reported as sql.ErrNoRows and a unique-key collision as ErrDuplicate,
// whatever the backend.
package repository

import "errors"

// ErrDuplicate is returned when an insert collides with a unique key.
var ErrDuplicate = errors.New("duplicate record")

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}
