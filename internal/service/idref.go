package service

import (
	"github.com/google/uuid"
)

// ParseObjectID parses an externally supplied storage identifier. field names the path or
// body parameter so the client learns which value was rejected.
func ParseObjectID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		e := newValidation(CodeMalformedID, field, "invalid "+field+" format")
		e.Err = err
		return uuid.Nil, e
	}
	return id, nil
}
