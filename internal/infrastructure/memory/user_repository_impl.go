package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/oksasatya/taskflow-api/internal/domain/apperrors"
	"github.com/oksasatya/taskflow-api/internal/domain/entity"
	"github.com/oksasatya/taskflow-api/internal/domain/repository"
)

// UserRepository is the in-memory implementation of repository.UserRepository.
// The email uniqueness check and the append happen under one lock so
// concurrent creates cannot race past each other.
type UserRepository struct {
	mu    sync.RWMutex
	users []entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(in repository.NewUser) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	normalized := entity.NormalizeEmail(in.Email)
	for _, u := range r.users {
		if entity.NormalizeEmail(u.Email) == normalized {
			return entity.User{}, apperrors.New(apperrors.KindDuplicate, "User with this email already exists")
		}
	}

	role := in.Role
	if role == "" {
		role = entity.RoleMember
	}
	u := entity.User{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Email: in.Email,
		Role:  role,
	}
	r.users = append(r.users, u)
	return u, nil
}

func (r *UserRepository) GetByID(id string) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return entity.User{}, apperrors.NotFound("User")
}

// GetByEmail looks up by the normalized form of the given address
func (r *UserRepository) GetByEmail(email string) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	normalized := entity.NormalizeEmail(email)
	for _, u := range r.users {
		if entity.NormalizeEmail(u.Email) == normalized {
			return u, nil
		}
	}
	return entity.User{}, apperrors.NotFound("User")
}

// List returns a snapshot copy of the collection in insertion order
func (r *UserRepository) List() []entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.User, len(r.users))
	copy(out, r.users)
	return out
}

// Reset clears the collection. Test harness use only.
func (r *UserRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = nil
}
