// Package memory implements the repository interfaces over process-local maps. It backs
// STORE_DRIVER=memory and the end-to-end handler tests; the same sentinel errors as the
// postgres package are returned so services cannot tell the two apart.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vocabapi/internal/model"
	"vocabapi/internal/repository"
)

// Store holds every table behind one lock so a cascading delete is atomic.
type Store struct {
	mu          sync.RWMutex
	users       map[string]model.User // by email
	folders     map[uuid.UUID]model.Folder
	words       map[string]model.Word // by business id
	assignments map[uuid.UUID]model.Assignment
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		users:       make(map[string]model.User),
		folders:     make(map[uuid.UUID]model.Folder),
		words:       make(map[string]model.Word),
		assignments: make(map[uuid.UUID]model.Assignment),
	}
}

// Users returns a repository.UserRepository backed by s.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Folders returns a repository.FolderRepository backed by s.
func (s *Store) Folders() *FolderRepository { return &FolderRepository{s: s} }

// Words returns a repository.WordRepository backed by s.
func (s *Store) Words() *WordRepository { return &WordRepository{s: s} }

// Assignments returns a repository.AssignmentRepository backed by s.
func (s *Store) Assignments() *AssignmentRepository { return &AssignmentRepository{s: s} }

// bump mirrors GREATEST(now, prev + 1µs) from the postgres queries.
func bump(prev, now time.Time) time.Time {
	if next := prev.Add(time.Microsecond); !now.After(next) {
		return next
	}
	return now
}

func page[T any](items []T, pq repository.PageQuery) []T {
	if pq.Offset >= len(items) {
		return make([]T, 0)
	}
	end := len(items)
	if pq.Limit > 0 && pq.Offset+pq.Limit < end {
		end = pq.Offset + pq.Limit
	}
	out := make([]T, end-pq.Offset)
	copy(out, items[pq.Offset:end])
	return out
}

type UserRepository struct{ s *Store }

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (r *UserRepository) Create(_ context.Context, u *model.User) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.s.users[u.Email]; ok {
		return &existing, nil
	}
	r.s.users[u.Email] = *u
	out := *u
	return &out, nil
}

type FolderRepository struct{ s *Store }

var _ repository.FolderRepository = (*FolderRepository)(nil)

func (r *FolderRepository) List(_ context.Context, userID uuid.UUID, pq repository.PageQuery) ([]model.Folder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := make([]model.Folder, 0)
	for _, f := range r.s.folders {
		if f.UserID == userID {
			items = append(items, f)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID.String() > items[j].ID.String()
	})
	return page(items, pq), nil
}

func (r *FolderRepository) FindByID(_ context.Context, userID, id uuid.UUID) (*model.Folder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	f, ok := r.s.folders[id]
	if !ok || f.UserID != userID {
		return nil, sql.ErrNoRows
	}
	return &f, nil
}

func (r *FolderRepository) Create(_ context.Context, f *model.Folder) (*model.Folder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.folders[f.ID]; ok {
		return nil, repository.ErrDuplicate
	}
	r.s.folders[f.ID] = *f
	out := *f
	return &out, nil
}

func (r *FolderRepository) Update(_ context.Context, userID, id uuid.UUID, patch model.FolderPatch, now time.Time) (*model.Folder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.folders[id]
	if !ok || f.UserID != userID {
		return nil, sql.ErrNoRows
	}
	if patch.Name.Set {
		f.Name = patch.Name.Value
	}
	if patch.Description.Set {
		f.Description = patch.Description.Ptr()
	}
	if patch.Color.Set {
		f.Color = patch.Color.Value
	}
	if patch.Icon.Set {
		f.Icon = patch.Icon.Value
	}
	f.UpdatedAt = bump(f.UpdatedAt, now)
	r.s.folders[id] = f
	return &f, nil
}

func (r *FolderRepository) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.folders[id]
	if !ok || f.UserID != userID {
		return sql.ErrNoRows
	}
	delete(r.s.folders, id)
	return nil
}

func (r *FolderRepository) DeleteCascade(_ context.Context, userID, id uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.folders[id]
	if !ok || f.UserID != userID {
		return 0, sql.ErrNoRows
	}
	delete(r.s.folders, id)
	var removed int64
	for aid, a := range r.s.assignments {
		if a.UserID == userID && a.FolderID == id {
			delete(r.s.assignments, aid)
			removed++
		}
	}
	return removed, nil
}

type WordRepository struct{ s *Store }

var _ repository.WordRepository = (*WordRepository)(nil)

func (r *WordRepository) FindByWordID(_ context.Context, wordID string) (*model.Word, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.words[wordID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &w, nil
}

func (r *WordRepository) Create(_ context.Context, w *model.Word) (*model.Word, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.words[w.WordID]; ok {
		return nil, repository.ErrDuplicate
	}
	r.s.words[w.WordID] = *w
	out := *w
	return &out, nil
}

func (r *WordRepository) Update(_ context.Context, wordID string, patch model.WordPatch, now time.Time) (*model.Word, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.words[wordID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if patch.Word.Set {
		w.Word = patch.Word.Value
	}
	if patch.Definition.Set {
		w.Definition = patch.Definition.Value
	}
	if patch.Example.Set {
		w.Example = patch.Example.Ptr()
	}
	w.UpdatedAt = bump(w.UpdatedAt, now)
	r.s.words[wordID] = w
	return &w, nil
}

func (r *WordRepository) SetImage(_ context.Context, wordID string, imageURL *string, now time.Time) (*model.Word, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.words[wordID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	w.ImageURL = imageURL
	w.UpdatedAt = bump(w.UpdatedAt, now)
	r.s.words[wordID] = w
	return &w, nil
}

type AssignmentRepository struct{ s *Store }

var _ repository.AssignmentRepository = (*AssignmentRepository)(nil)

func (r *AssignmentRepository) Create(_ context.Context, a *model.Assignment) (*model.Assignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.assignments {
		if existing.UserID == a.UserID && existing.FolderID == a.FolderID && existing.WordID == a.WordID {
			return nil, repository.ErrDuplicate
		}
	}
	r.s.assignments[a.ID] = *a
	out := *a
	return &out, nil
}

func (r *AssignmentRepository) ListByFolder(_ context.Context, userID, folderID uuid.UUID, pq repository.PageQuery) ([]model.Assignment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := make([]model.Assignment, 0)
	for _, a := range r.s.assignments {
		if a.UserID == userID && a.FolderID == folderID {
			items = append(items, a)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if c := strings.Compare(items[i].Word, items[j].Word); c != 0 {
			return c < 0
		}
		return items[i].ID.String() < items[j].ID.String()
	})
	return page(items, pq), nil
}

func (r *AssignmentRepository) Delete(_ context.Context, userID, folderID uuid.UUID, wordID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, a := range r.s.assignments {
		if a.UserID == userID && a.FolderID == folderID && a.WordID == wordID {
			delete(r.s.assignments, id)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r *AssignmentRepository) RefreshWord(_ context.Context, w model.Word, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, a := range r.s.assignments {
		if a.WordID != w.WordID {
			continue
		}
		a.Word = w.Word
		a.Definition = w.Definition
		a.Example = w.Example
		a.ImageURL = w.ImageURL
		a.UpdatedAt = bump(a.UpdatedAt, now)
		r.s.assignments[id] = a
		n++
	}
	return n, nil
}
