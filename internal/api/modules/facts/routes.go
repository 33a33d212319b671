package facts

import (
	"github.com/gin-gonic/gin"

	"github.com/ethanbaker/funfacts/internal/stores/fact"
)

// Register routes for the facts module
func RegisterRoutes(g *gin.RouterGroup, facts fact.Store) {
	ct := &Controller{facts: facts}

	g.GET("/random_fact", ct.RandomFact)       // One random fun fact
	g.GET("/random_loading", ct.RandomLoading) // One random loading line
}
