package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondSuccess writes the standard success envelope
func RespondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// RespondError writes the standard error envelope
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// RespondErrorWithData writes the error envelope with details alongside the message
func RespondErrorWithData(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"success": false,
		"data":    data,
		"error":   message,
	})
}

// AbortWithError writes the error envelope and stops the handler chain
func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// RespondInternalError logs err and returns a 500 carrying its message
func RespondInternalError(c *gin.Context, err error) {
	Logger.WithError(err).Errorf("%s %s failed", c.Request.Method, c.Request.URL.Path)
	RespondError(c, http.StatusInternalServerError, err.Error())
}
