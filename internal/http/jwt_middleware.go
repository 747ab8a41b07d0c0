package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"iris-api/internal/service"
)

const authClaimsKey = "auth_claims"

// JWTAuthMiddleware valida el header Authorization en rutas protegidas.
// El formato exigido es exactamente "JWT <token>": dos campos, esquema
// literal y sensible a mayúsculas. Poseer un token válido alcanza; el
// subject no se usa para decidir autorización.
func JWTAuthMiddleware(jwtSvc *service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtSvc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "jwt not configured"})
			c.Abort()
			return
		}

		parts := strings.Fields(c.GetHeader("Authorization"))
		if len(parts) != 2 || parts[0] != "JWT" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "missing or malformed token",
				"message": "use Authorization: 'JWT <token>'",
			})
			c.Abort()
			return
		}

		claims, err := jwtSvc.Parse(parts[1])
		if err != nil {
			if errors.Is(err, service.ErrJWTExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			}
			c.Abort()
			return
		}

		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

// GetAuthClaims obtiene claims de JWT desde el contexto.
func GetAuthClaims(c *gin.Context) (service.Claims, bool) {
	val, ok := c.Get(authClaimsKey)
	if !ok {
		return service.Claims{}, false
	}
	claims, ok := val.(service.Claims)
	return claims, ok
}
