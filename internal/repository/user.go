package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shoplite/shoplite-go/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
)

// Users is the user collection contract. The in-memory implementation is
// the only one wired today; handlers depend on this interface so a real
// storage backend can be swapped in without touching them.
type Users interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.UserResponse, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// MemoryUsers is a process-wide, mutex-guarded in-memory user collection.
type MemoryUsers struct {
	mu     sync.Mutex
	users  map[int64]model.User
	nextID int64
}

// NewMemoryUsers creates an empty MemoryUsers.
func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{users: make(map[int64]model.User)}
}

// Create inserts a new user, assigning the next id from a monotonic
// counter, and sets the generated id and timestamp on the user struct.
func (r *MemoryUsers) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
		if u.Username == user.Username {
			return ErrDuplicateUsername
		}
	}

	r.nextID++
	user.ID = r.nextID
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	r.users[user.ID] = *user
	return nil
}

// GetByID retrieves a user by id.
func (r *MemoryUsers) GetByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

// GetByEmail retrieves a user by their normalized email address.
func (r *MemoryUsers) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// List returns password-redacted projections of every user, id-ordered.
func (r *MemoryUsers) List(ctx context.Context) ([]model.UserResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.UserResponse, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Response())
	}
	sortByID(out, func(u model.UserResponse) int64 { return u.ID })
	return out, nil
}

// Delete removes a user by id and reports whether one was found.
func (r *MemoryUsers) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}
