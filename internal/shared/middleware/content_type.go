package middleware

import (
	"github.com/gin-gonic/gin"

	"book-library-api/internal/shared/response"
)

// RequireJSON rejects mutating requests whose body is not application/json
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != "application/json" {
			response.UnsupportedMediaType(c, "Content type must be application/json")
			return
		}

		c.Next()
	}
}
