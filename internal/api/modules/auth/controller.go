package auth

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/ethanbaker/funfacts/internal/stores/setting"
	"github.com/ethanbaker/funfacts/pkg/password"
)

// Controller holds the store handles the auth routes operate on
type Controller struct {
	settings setting.Store
}

// LoginPage handles GET requests to render the login form
func (ct *Controller) LoginPage(c *gin.Context) {
	next := c.DefaultQuery("next", "/admin")

	session := sessions.Default(c)
	flashes := session.Flashes()
	session.Save()

	c.HTML(http.StatusOK, "login.html", gin.H{
		"NextURL": next,
		"Flashes": flashes,
	})
}

// Login handles POST requests to authenticate the operator
func (ct *Controller) Login(c *gin.Context) {
	pw := c.PostForm("password")
	next := c.DefaultPostForm("next_url", "/admin")
	session := sessions.Default(c)

	hash, err := ct.settings.Get(c.Request.Context(), setting.KeyAdminPasswordHash)
	if err != nil && !errors.Is(err, setting.ErrNotFound) {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	if err == nil && password.Verify(hash, pw) {
		session.Set(sessionIsAdmin, true)
		if err := session.Save(); err != nil {
			c.String(http.StatusInternalServerError, "internal error")
			return
		}
		c.Redirect(http.StatusFound, next)
		return
	}

	// Any number of attempts is permitted
	session.AddFlash("Wrong password.")
	session.Save()
	c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(next))
}

// Logout handles POST requests to clear all session state
func (ct *Controller) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	session.Save()

	c.Redirect(http.StatusFound, "/")
}
