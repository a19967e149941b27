package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/servilimp/servilimp-app/utils"
)

// AuthMiddleware resolves the session token from the HTTP-only cookie (or a
// Bearer header for non-browser clients), validates it and puts the session
// record into the request context. Any missing, invalid or revoked token
// ends the request with 401 before role checks run.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, _ := c.Cookie(utils.SessionCookieName)
		if tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
			c.Abort()
			return
		}

		claims, err := utils.ParseSessionToken(tokenString)
		if err != nil || claims == nil || claims.UserID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired session"))
			c.Abort()
			return
		}

		if utils.IsTokenRevoked(claims.ID) {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired session"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("user_name", claims.Name)
		c.Set("session_jti", claims.ID)
		c.Set("session_exp", claims.ExpiresAt.Time)

		c.Next()
	}
}
