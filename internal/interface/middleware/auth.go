package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suugaanle/qaamuus/internal/application"
	"github.com/suugaanle/qaamuus/internal/domain/entity"
	"github.com/suugaanle/qaamuus/pkg/helpers"
	"github.com/suugaanle/qaamuus/pkg/response"
)

// Auth validates the access token cookie and resolves the account it names.
// It sets userID, userName, and userRole in the Gin context on success.
func Auth(accounts *application.AuthService, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", err.Error())
			c.Abort()
			return
		}
		u, err := accounts.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "account not found", nil)
			c.Abort()
			return
		}
		c.Set("userID", u.ID)
		c.Set("userName", u.Username)
		c.Set("userRole", string(u.Role))
		c.Next()
	}
}

// AdminOnly rejects requests whose resolved account does not carry the admin
// role. Must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userRole") != string(entity.RoleAdmin) {
			response.Error[any](c, http.StatusForbidden, "admin role required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
