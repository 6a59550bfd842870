// Generated by crudgen from table users.

package application

import (
	"context"

	"github.com/ridoystarlord/crudgen/generator/golden/user/domain"
)

// UserUseCase exposes the users operations to the controller layer.
type UserUseCase struct {
	repository domain.UserRepository
}

func NewUserUseCase(repository domain.UserRepository) *UserUseCase {
	return &UserUseCase{repository: repository}
}

func (uc *UserUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return uc.repository.FindAll(ctx)
}

// GetUserByID returns nil without error when no row matches id.
func (uc *UserUseCase) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return uc.repository.FindByID(ctx, id)
}

func (uc *UserUseCase) CreateUser(ctx context.Context, input *domain.User) (*domain.User, error) {
	return uc.repository.Create(ctx, input)
}

// UpdateUser changes only the columns named in fields.
func (uc *UserUseCase) UpdateUser(ctx context.Context, id int64, input *domain.User, fields []string) (*domain.User, error) {
	return uc.repository.Update(ctx, id, input, fields)
}

func (uc *UserUseCase) DeleteUser(ctx context.Context, id int64) error {
	return uc.repository.Delete(ctx, id)
}
