package middleware

import (
	"strings"

	"literary-cms/config"
	"literary-cms/helper"
	"literary-cms/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = &helper.HTTPHelper{}

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "bearer token required")
			c.Abort()
			return
		}

		claims := &Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})

		if err != nil || !token.Valid {
			HTTPHelper.SendUnauthorizedError(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			HTTPHelper.SendUnauthorizedError(c, "user role not found")
			c.Abort()
			return
		}

		role := models.UserRole(userRole.(string))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		HTTPHelper.SendForbiddenError(c, "insufficient permissions")
		c.Abort()
	}
}

// CurrentUser rebuilds the caller's identity from the token claims stored on
// the context. Only ID, Username and Role are populated.
func CurrentUser(c *gin.Context) models.User {
	user := models.User{}
	if id, ok := c.Get("user_id"); ok {
		user.ID = id.(uint)
	}
	if username, ok := c.Get("username"); ok {
		user.Username = username.(string)
	}
	if role, ok := c.Get("role"); ok {
		user.Role = models.UserRole(role.(string))
	}
	return user
}
