package mappers

import (
	"stratplan/internal/domain/user"
	"stratplan/internal/infrastructure/persistence/models"
)

// UserMapper converts between user entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	ToDomainList(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	if u == nil {
		return nil
	}
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.FirstName,
		model.LastName,
		model.Email,
		model.PasswordHash,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapperImpl) ToDomainList(list []*models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(list))
	for _, model := range list {
		u, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
