package repository

import "github.com/oksasatya/taskflow-api/internal/domain/entity"

// NewUser is the validated input for user creation. A zero Role means the
// repository applies the default.
type NewUser struct {
	Name  string
	Email string
	Role  entity.UserRole
}

// UserRepository owns the user collection and the normalized-email
// uniqueness invariant. Users are never updated or deleted.
type UserRepository interface {
	Create(in NewUser) (entity.User, error)
	GetByID(id string) (entity.User, error)
	GetByEmail(email string) (entity.User, error)
	List() []entity.User
	Reset()
}
