package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/wirelance/wirelance/internal/config"
	"github.com/wirelance/wirelance/internal/modules/serializer"
)

// CtxUserID is the gin context key holding the authenticated user id.
const CtxUserID = "userId"

// UserAuth returns a middleware that validates JWT bearer tokens.
// Issuer, audience and lifetime are all checked; the user id claim is
// placed in the gin context for handlers.
func UserAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.Auth.JwtSecret), nil
		},
			jwt.WithIssuer(cfg.Auth.Issuer),
			jwt.WithAudience(cfg.Auth.Audience),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		sub, ok := claims["user_id"].(float64)
		if !ok || sub <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		c.Set(CtxUserID, int64(sub))
		c.Next()
	}
}

// UserID reads the authenticated user id set by UserAuth. A route
// reachable without the middleware gets an error, not a zero id.
func UserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("no authenticated user in context")
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, errors.New("no authenticated user in context")
	}
	return id, nil
}
