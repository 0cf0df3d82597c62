package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/GBronzi/Reporte-de-ventas/internal/models"
	"github.com/GBronzi/Reporte-de-ventas/internal/store"
	"github.com/GBronzi/Reporte-de-ventas/internal/util"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the gin context key holding the authenticated user.
const CurrentUserKey = "currentUser"

// Auth validates the request's JWT and puts the matching user into the
// context. Tokens are accepted from the Authorization header, the
// ?token= query parameter (downloads cannot set headers) and the
// rv_token cookie, in that order.
func Auth(jwtSecret string, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			if cookie, err := c.Cookie("rv_token"); err == nil {
				tokenStr = cookie
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "session expired, sign in again")
			c.Abort()
			return
		}

		user, err := st.GetUser(claims.UserID)
		if err != nil {
			if store.IsNotFound(err) {
				util.Error(c, http.StatusUnauthorized, util.CodeAuth, "user no longer exists")
			} else {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "user lookup failed")
			}
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// CurrentUser extracts the authenticated user placed by Auth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// RequireAdmin rejects requests whose user is not an administrator.
// Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			util.Error(c, http.StatusForbidden, util.CodeForbidden, "administrator access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
