package middleware

import (
	"github.com/Modeva-Ecommerce/modeva-storefront/utils"
	"github.com/gin-gonic/gin"
)

const (
	catalogTokenKey = "catalogToken"
	userNameKey     = "userName"
)

// CatalogToken reads the catalog API token fresh on every request, from the
// cookie first and the Authorization header second. A missing token is not
// rejected here; the catalog API rejects it and the screen shows a failure.
func CatalogToken(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		cookieToken, err := c.Cookie(cookieName)
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else if headerToken, err := utils.ExtractTokenFromHeader(c.GetHeader("Authorization")); err == nil {
			token = headerToken
		}

		c.Set(catalogTokenKey, token)
		if name := utils.TokenSubject(token); name != "" {
			c.Set(userNameKey, name)
		}

		c.Next()
	}
}

// GetCatalogTokenFromContext returns the token stored by CatalogToken.
func GetCatalogTokenFromContext(c *gin.Context) string {
	return c.GetString(catalogTokenKey)
}

func GetUserNameFromContext(c *gin.Context) (string, bool) {
	name, exists := c.Get(userNameKey)
	if !exists {
		return "", false
	}
	return name.(string), true
}
