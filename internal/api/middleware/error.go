package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics and emits the standard error envelope.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		if err, ok := recovered.(string); ok {
			msg = err
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": msg,
			},
		})
		c.Abort()
	})
}
