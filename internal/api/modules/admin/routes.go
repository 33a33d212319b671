package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/ethanbaker/funfacts/internal/api/modules/auth"
	"github.com/ethanbaker/funfacts/internal/stores/fact"
	"github.com/ethanbaker/funfacts/internal/stores/setting"
)

// Register routes for the admin module. Every route in this group passes
// through the admin session gate before the handler body runs.
func RegisterRoutes(engine *gin.Engine, facts fact.Store, settings setting.Store) {
	ct := &Controller{facts: facts, settings: settings}

	group := engine.Group("/admin")
	group.Use(auth.RequireAdmin)

	group.GET("", ct.List)
	group.POST("/add", ct.Add)
	group.GET("/edit/:id", ct.EditPage)
	group.POST("/edit/:id", ct.EditSave)
	group.POST("/delete/:id", ct.Delete)
	group.POST("/change_password", ct.ChangePassword)
}
