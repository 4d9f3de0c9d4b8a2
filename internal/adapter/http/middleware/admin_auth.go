package middleware

import (
	"net/http"
	"strings"

	"gadget_garage/pkg"

	"github.com/gin-gonic/gin"
)

// SessionVerifier validates an admin session token.
type SessionVerifier interface {
	ValidateSession(token string) error
}

var (
	errMissingToken = pkg.NewDomainErrorSimple("ADMIN_AUTH_REQUIRED", "Admin login required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("ADMIN_SESSION_INVALID", "Admin session is invalid or expired", http.StatusUnauthorized)
)

// AdminAuth requires "Authorization: Bearer <token>" issued by the admin login.
func AdminAuth(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		if err := verifier.ValidateSession(strings.TrimSpace(parts[1])); err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Next()
	}
}
