package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	ctxUserID   = "user_id"
	ctxUserName = "user_name"
	ctxEmail    = "user_email"
	ctxRole     = "user_role"
)

// AuthMiddleware verifies the Bearer token issued by the auth provider and
// stashes the identity claims on the request context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
			c.Abort()
			return
		}

		if !strings.HasPrefix(tokenString, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			c.Abort()
			return
		}
		tokenString = tokenString[7:]

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set(ctxUserID, userID)
		if name, ok := claims["name"].(string); ok {
			c.Set(ctxUserName, name)
		}
		if email, ok := claims["email"].(string); ok {
			c.Set(ctxEmail, email)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(ctxRole, role)
		}

		c.Next()
	}
}

// AdminMiddleware allows only tokens carrying the admin role. It must run
// after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user's id from the request context.
func GetUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// GetUserName returns the authenticated user's display name.
func GetUserName(c *gin.Context) string {
	return c.GetString(ctxUserName)
}

// GetUserEmail returns the authenticated user's email.
func GetUserEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}
