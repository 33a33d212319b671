package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/ethanbaker/funfacts/internal/stores/setting"
)

// Register routes for the auth module
func RegisterRoutes(engine *gin.Engine, settings setting.Store) {
	ct := &Controller{settings: settings}

	engine.GET("/login", ct.LoginPage)  // Render the login form
	engine.POST("/login", ct.Login)     // Submit the admin password
	engine.POST("/logout", ct.Logout)   // Clear the session
}
