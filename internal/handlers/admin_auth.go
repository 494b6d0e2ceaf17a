package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"foodfest/internal/config"
)

type adminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLogin checks the shared admin password and hands back a token. In
// static mode the token is the one configured value; in jwt mode it is a
// signed HS256 token with role=admin and an expiry.
func AdminLogin(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/login"
		defer handlePanic(c, route)

		var req adminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		if strings.TrimSpace(req.Password) == "" || !passwordMatches(cfg, req.Password) {
			respondWithError(c, http.StatusUnauthorized, route, "Invalid password")
			return
		}

		token := cfg.AdminToken
		if cfg.AuthMode == config.AuthModeJWT {
			claims := jwt.MapClaims{
				"role": "admin",
				"iat":  time.Now().Unix(),
				"exp":  time.Now().Add(cfg.AccessTokenTTL).Unix(),
			}
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
				SignedString([]byte(cfg.JWTSecret))
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
				return
			}
			token = signed
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Login successful",
			"token":   token,
		})
	}
}

func passwordMatches(cfg config.Config, password string) bool {
	if cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword(
			[]byte(cfg.AdminPasswordHash),
			[]byte(password),
		) == nil
	}
	return password == cfg.AdminPassword
}
