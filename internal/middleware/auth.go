package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"foodfest/internal/config"
)

// AdminAuth gates mutating admin operations. In static mode the bearer token
// is compared against the one configured shared token (no expiry, no
// revocation). In jwt mode the token must be a valid HS256 token carrying
// role=admin.
func AdminAuth(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			abortUnauthorized(c, "Unauthorized")
			return
		}

		parts := strings.Split(raw, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Unauthorized")
			return
		}

		if cfg.AuthMode == config.AuthModeJWT {
			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || !token.Valid {
				abortUnauthorized(c, "Unauthorized")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				abortUnauthorized(c, "Unauthorized")
				return
			}

			role, _ := claims["role"].(string)
			if role != "admin" {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"success": false,
					"message": "Forbidden",
				})
				return
			}

			c.Set("claims", claims)
			c.Next()
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(cfg.AdminToken)) != 1 {
			abortUnauthorized(c, "Unauthorized")
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
