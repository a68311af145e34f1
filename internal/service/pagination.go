package service

import (
	"fmt"
	"strconv"
	"strings"

	"vocabapi/internal/repository"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// PageParams are the raw pagination inputs; nil means "use the default".
type PageParams struct {
	Limit *int
	Skip  *int
}

// Page is a validated pagination window.
type Page struct {
	Limit int `json:"limit"`
	Skip  int `json:"skip"`
}

// Query converts the window into repository terms.
func (p Page) Query() repository.PageQuery {
	return repository.PageQuery{Limit: p.Limit, Offset: p.Skip}
}

// Clamp applies defaults and bounds: 1 <= limit <= MaxLimit, skip >= 0.
// A violation is reported as INVALID_PAGINATION naming the parameter.
func Clamp(p PageParams) (Page, error) {
	out := Page{Limit: DefaultLimit, Skip: 0}
	if p.Limit != nil {
		if *p.Limit < 1 || *p.Limit > MaxLimit {
			return Page{}, newValidation(CodeInvalidPagination, "limit",
				fmt.Sprintf("limit must be between 1 and %d", MaxLimit))
		}
		out.Limit = *p.Limit
	}
	if p.Skip != nil {
		if *p.Skip < 0 {
			return Page{}, newValidation(CodeInvalidPagination, "skip", "skip must be greater than or equal to 0")
		}
		out.Skip = *p.Skip
	}
	return out, nil
}

// ParsePageParams reads raw query values. Empty values are treated as omitted.
func ParsePageParams(limit, skip string) (PageParams, error) {
	var p PageParams
	var err error
	if p.Limit, err = parseOptionalInt("limit", limit); err != nil {
		return PageParams{}, err
	}
	if p.Skip, err = parseOptionalInt("skip", skip); err != nil {
		return PageParams{}, err
	}
	return p, nil
}

func parseOptionalInt(field, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		e := newValidation(CodeInvalidPagination, field, field+" must be an integer")
		e.Err = err
		return nil, e
	}
	return &n, nil
}
