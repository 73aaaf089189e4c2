package application

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/taskflow-api/internal/domain/apperrors"
	"github.com/oksasatya/taskflow-api/internal/domain/entity"
	"github.com/oksasatya/taskflow-api/internal/domain/repository"
)

// UserService orchestrates user creation and lookups. Users are created
// once and never mutated.
type UserService struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

func (s *UserService) Create(in repository.NewUser) (entity.User, error) {
	u, err := s.Repo.Create(in)
	if err != nil {
		if s.Logger != nil && apperrors.IsKind(err, apperrors.KindDuplicate) {
			s.Logger.WithField("email", entity.NormalizeEmail(in.Email)).Warn("duplicate user creation rejected")
		}
		return entity.User{}, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Debug("user created")
	}
	return u, nil
}

func (s *UserService) Get(id string) (entity.User, error) {
	return s.Repo.GetByID(id)
}

func (s *UserService) GetByEmail(email string) (entity.User, error) {
	return s.Repo.GetByEmail(email)
}

func (s *UserService) List() []entity.User {
	return s.Repo.List()
}
