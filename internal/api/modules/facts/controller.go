package facts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ethanbaker/funfacts/internal/stores/fact"
)

// Fallback payloads for an empty table
const (
	fallbackFact    = "No facts yet. Add some in the admin area."
	fallbackLoading = "Loading…"
)

// Controller holds the store handle the public routes read from
type Controller struct {
	facts fact.Store
}

// RandomFact handles GET requests for one uniformly random fun fact
func (ct *Controller) RandomFact(c *gin.Context) {
	ct.random(c, fact.KindFact, fallbackFact)
}

// RandomLoading handles GET requests for one uniformly random loading line
func (ct *Controller) RandomLoading(c *gin.Context) {
	ct.random(c, fact.KindLoading, fallbackLoading)
}

// random picks one row of the given kind, falling back to a fixed string
// when no rows of that kind exist
func (ct *Controller) random(c *gin.Context, kind, fallback string) {
	f, err := ct.facts.Random(c.Request.Context(), kind)
	if errors.Is(err, fact.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"text": fallback})
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": f.Text})
}
