// Generated by crudgen from table users.

package services

import (
	"gorm.io/gorm"

	"github.com/ridoystarlord/crudgen/generator/golden/user/application"
	"github.com/ridoystarlord/crudgen/generator/golden/user/infrastructure/controller"
	"github.com/ridoystarlord/crudgen/generator/golden/user/infrastructure/repository"
)

// UserService is the composed User module.
type UserService struct {
	Repository *repository.UserRepository
	UseCase    *application.UserUseCase
	Controller *controller.UserController
}

// NewUserService wires repository, use-case and controller over db.
func NewUserService(db *gorm.DB) *UserService {
	repo := repository.NewUserRepository(db)
	useCase := application.NewUserUseCase(repo)

	return &UserService{
		Repository: repo,
		UseCase:    useCase,
		Controller: controller.NewUserController(useCase),
	}
}
