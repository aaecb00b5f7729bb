package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse writes the success envelope every auction endpoint shares:
// the HTTP status, a short human-readable message, and the payload under
// "data".
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError writes the failure envelope. The message is the client-facing
// summary from MapErrorToHTTP; the wrapped error carries the detail.
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
