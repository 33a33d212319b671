package auth

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// sessionIsAdmin is the session key holding the authenticated-operator flag
const sessionIsAdmin = "is_admin"

// RequireAdmin guards admin routes. Unauthenticated requests are redirected
// to the login page with the originally requested path in the next parameter.
func RequireAdmin(c *gin.Context) {
	session := sessions.Default(c)

	if admin, ok := session.Get(sessionIsAdmin).(bool); !ok || !admin {
		c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.Path))
		c.Abort()
		return
	}

	c.Next()
}
