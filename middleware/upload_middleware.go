package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for form fields and part headers
const multipartOverhead = 1 << 20

// LimitUploadSize caps the request body of multipart uploads at files*perFile bytes
func LimitUploadSize(files int, perFile int64) gin.HandlerFunc {
	limit := int64(files)*perFile + multipartOverhead
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"success": false,
				"error":   "Upload is too large",
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
