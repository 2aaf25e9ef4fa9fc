package routes

import (
	"cityserve-be/controllers"
	"cityserve-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, ctrl *controllers.AuthController) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", ctrl.Register)
		auth.POST("/login", ctrl.Login)
		auth.GET("/me", middlewares.AuthMiddleware(), ctrl.GetMe)
	}
}
