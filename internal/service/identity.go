package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vocabapi/internal/model"
	"vocabapi/internal/repository"
)

// IdentityService yields the principal every request acts as.
type IdentityService interface {
	// Resolve returns the active user, creating it on first use.
	Resolve(ctx context.Context) (*model.User, error)
}

// identityService resolves a single configured identity. Once found the user is cached;
// the row never changes for the lifetime of the process.
type identityService struct {
	repo  repository.UserRepository
	email string
	name  string
	log   *zap.Logger
	now   func() time.Time

	mu   sync.Mutex
	user *model.User
}

// NewIdentityService constructs an IdentityService for the given email and display name.
func NewIdentityService(repo repository.UserRepository, email, name string, log *zap.Logger) IdentityService {
	return &identityService{
		repo:  repo,
		email: email,
		name:  name,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *identityService) Resolve(ctx context.Context) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		u := *s.user
		return &u, nil
	}

	u, err := s.repo.FindByEmail(ctx, s.email)
	if errors.Is(err, sql.ErrNoRows) {
		u, err = s.repo.Create(ctx, &model.User{
			ID:        uuid.New(),
			Email:     s.email,
			Name:      s.name,
			CreatedAt: s.now(),
		})
		if err == nil {
			s.log.Info("user_created", zap.String("user_id", u.ID.String()), zap.String("email", u.Email))
		}
	}
	if err != nil {
		return nil, Internal(err)
	}

	s.user = u
	out := *u
	return &out, nil
}

// MatchesUser reports whether a {userId} path reference names u. Accepted forms are "me",
// the user's id and the user's email (case-insensitive).
func MatchesUser(u *model.User, ref string) bool {
	if u == nil {
		return false
	}
	switch {
	case ref == "me":
		return true
	case ref == u.ID.String():
		return true
	case strings.EqualFold(ref, u.Email):
		return true
	}
	return false
}

// ErrUserNotFound answers a {userId} that does not name the active user.
var ErrUserNotFound = newNotFound(CodeNotFound, "user not found")
