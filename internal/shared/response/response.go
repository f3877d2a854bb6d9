package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-library-api/internal/shared/query"
)

// Data writes the success envelope for a single resource
func Data(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"data": data,
	})
}

// List writes the success envelope for a paginated collection.
// numbers_of_records is the count of records in this page.
func List(c *gin.Context, data interface{}, count int, pagination query.Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"data":               data,
		"numbers_of_records": count,
		"pagination":         pagination,
	})
}

// Token writes the envelope for auth endpoints that issue a credential
func Token(c *gin.Context, statusCode int, token string) {
	c.JSON(statusCode, gin.H{
		"token": token,
	})
}

// Error writes the error envelope. message is either a string or a
// field -> message map (validation failures).
func Error(c *gin.Context, statusCode int, message interface{}) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

// Common error responses
func BadRequest(c *gin.Context, message interface{}) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func UnsupportedMediaType(c *gin.Context, message string) {
	Error(c, http.StatusUnsupportedMediaType, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
