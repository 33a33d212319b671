package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/ethanbaker/funfacts/internal/stores/fact"
	"github.com/ethanbaker/funfacts/internal/stores/setting"
	"github.com/ethanbaker/funfacts/pkg/password"
)

const (
	maxTextLen     = 280
	minPasswordLen = 6
)

// Controller holds the store handles the admin routes operate on
type Controller struct {
	facts    fact.Store
	settings setting.Store
}

// List handles GET requests for the admin overview of all facts and loading
// lines, each in ascending id order
func (ct *Controller) List(c *gin.Context) {
	ctx := c.Request.Context()

	factRows, err := ct.facts.ListByKind(ctx, fact.KindFact)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	loadingRows, err := ct.facts.ListByKind(ctx, fact.KindLoading)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	session := sessions.Default(c)
	flashes := session.Flashes()
	session.Save()

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Facts":   factRows,
		"Loading": loadingRows,
		"Flashes": flashes,
	})
}

// Add handles POST requests to insert a new fact or loading line
func (ct *Controller) Add(c *gin.Context) {
	text := strings.TrimSpace(c.PostForm("text"))
	kind := strings.TrimSpace(c.DefaultPostForm("kind", fact.KindFact))

	if !fact.ValidKind(kind) {
		c.String(http.StatusBadRequest, "invalid kind")
		return
	}

	// Empty text is a silent no-op, not an error
	if text == "" {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if utf8.RuneCountInString(text) > maxTextLen {
		c.String(http.StatusBadRequest, "text too long (max 280 characters)")
		return
	}

	if _, err := ct.facts.Create(c.Request.Context(), kind, text); err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// EditPage handles GET requests to render the edit form for one fact
func (ct *Controller) EditPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	f, err := ct.facts.Get(c.Request.Context(), id)
	if errors.Is(err, fact.ErrNotFound) {
		c.String(http.StatusNotFound, "fact not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.HTML(http.StatusOK, "edit.html", gin.H{"Fact": f})
}

// EditSave handles POST requests to overwrite the text of one fact. Unlike
// Add, an empty text here is rejected with a client error.
func (ct *Controller) EditSave(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := ct.facts.Get(ctx, id); err != nil {
		if errors.Is(err, fact.ErrNotFound) {
			c.String(http.StatusNotFound, "fact not found")
			return
		}
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		c.String(http.StatusBadRequest, "text must not be empty")
		return
	}
	if utf8.RuneCountInString(text) > maxTextLen {
		c.String(http.StatusBadRequest, "text too long (max 280 characters)")
		return
	}

	if err := ct.facts.UpdateText(ctx, id, text); err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// Delete handles POST requests to remove one fact
func (ct *Controller) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := ct.facts.Delete(c.Request.Context(), id)
	if errors.Is(err, fact.ErrNotFound) {
		c.String(http.StatusNotFound, "fact not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// ChangePassword handles POST requests to rotate the admin password. Every
// rule violation surfaces as a flash message and leaves the stored hash
// untouched; the current session stays logged in either way.
func (ct *Controller) ChangePassword(c *gin.Context) {
	currentPw := c.PostForm("current_pw")
	newPw := c.PostForm("new_pw")
	newPw2 := c.PostForm("new_pw2")

	ctx := c.Request.Context()
	session := sessions.Default(c)

	hash, err := ct.settings.Get(ctx, setting.KeyAdminPasswordHash)
	if err != nil && !errors.Is(err, setting.ErrNotFound) {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	if err != nil || !password.Verify(hash, currentPw) {
		session.AddFlash("Current password is incorrect.")
		session.Save()
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if len(newPw) < minPasswordLen {
		session.AddFlash("New password too short (min 6 characters).")
		session.Save()
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if newPw != newPw2 {
		session.AddFlash("New passwords do not match.")
		session.Save()
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	newHash, err := password.Hash(newPw)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if err := ct.settings.Set(ctx, setting.KeyAdminPasswordHash, newHash); err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	session.AddFlash("Password changed.")
	session.Save()
	c.Redirect(http.StatusFound, "/admin")
}

// parseID reads the :id route parameter. A non-numeric id behaves like an
// unknown one and yields a 404.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "fact not found")
		return 0, false
	}

	return uint(id), true
}
