// Generated by crudgen from table users.

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ridoystarlord/crudgen/generator/golden/user/infrastructure/services"
	scaffold "github.com/ridoystarlord/crudgen/scaffold"
)

// RegisterUserRoutes mounts the User handlers on rg.
func RegisterUserRoutes(rg *gin.RouterGroup, svc *services.UserService) {
	ctrl := svc.Controller

	rg.GET("/", scaffold.Async(ctrl.ListUsers))
	rg.GET("/:id", scaffold.Async(ctrl.GetUserByID))
	rg.POST("/create", scaffold.Async(ctrl.CreateUser))
	rg.PUT("/update/:id", scaffold.Async(ctrl.UpdateUser))
	rg.DELETE("/delete/:id", scaffold.Async(ctrl.DeleteUser))
}
