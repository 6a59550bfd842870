// Generated by crudgen from table users.

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridoystarlord/crudgen/generator/golden/user/application"
	"github.com/ridoystarlord/crudgen/generator/golden/user/domain"
	scaffold "github.com/ridoystarlord/crudgen/scaffold"
)

// UserController turns UserUseCase results into response envelopes.
type UserController struct {
	useCase *application.UserUseCase
}

func NewUserController(useCase *application.UserUseCase) *UserController {
	return &UserController{useCase: useCase}
}

func (ctrl *UserController) ListUsers(c *gin.Context) scaffold.Result {
	entities, err := ctrl.useCase.ListUsers(c.Request.Context())
	if err != nil {
		return scaffold.Fail(scaffold.GetDataError, err)
	}
	return scaffold.Success(http.StatusOK, entities)
}

func (ctrl *UserController) GetUserByID(c *gin.Context) scaffold.Result {
	id, err := scaffold.ParamID(c)
	if err != nil {
		return scaffold.Fail(scaffold.GetDataError, err)
	}

	entity, err := ctrl.useCase.GetUserByID(c.Request.Context(), id)
	return scaffold.Found(entity, err, scaffold.GetDataError, "User not found")
}

func (ctrl *UserController) CreateUser(c *gin.Context) scaffold.Result {
	var input domain.User
	if err := scaffold.Bind(c, &input); err != nil {
		return scaffold.Fail(scaffold.CreateDataError, err)
	}

	entity, err := ctrl.useCase.CreateUser(c.Request.Context(), &input)
	if err != nil {
		return scaffold.Fail(scaffold.CreateDataError, err)
	}
	return scaffold.Success(http.StatusCreated, entity)
}

func (ctrl *UserController) UpdateUser(c *gin.Context) scaffold.Result {
	id, err := scaffold.ParamID(c)
	if err != nil {
		return scaffold.Fail(scaffold.UpdateDataError, err)
	}

	var input domain.User
	fields, err := scaffold.BindFields(c, &input)
	if err != nil {
		return scaffold.Fail(scaffold.UpdateDataError, err)
	}

	entity, err := ctrl.useCase.UpdateUser(c.Request.Context(), id, &input, fields)
	if err != nil {
		return scaffold.Fail(scaffold.UpdateDataError, err)
	}
	return scaffold.Success(http.StatusOK, entity)
}

func (ctrl *UserController) DeleteUser(c *gin.Context) scaffold.Result {
	id, err := scaffold.ParamID(c)
	if err != nil {
		return scaffold.Fail(scaffold.DeleteDataError, err)
	}

	if err := ctrl.useCase.DeleteUser(c.Request.Context(), id); err != nil {
		return scaffold.Fail(scaffold.DeleteDataError, err)
	}
	return scaffold.Success(http.StatusNoContent, []any{})
}
