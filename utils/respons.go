package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondData writes the payload as-is. List and detail endpoints return
// bare objects/arrays, matching what the admin console expects.
func RespondData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// RespondMessage writes {"message": ...} for mutations without a new id.
func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// RespondCreated writes {"id": ..., "message": ...} for successful inserts.
func RespondCreated(c *gin.Context, id uint, message string) {
	c.JSON(201, gin.H{"id": id, "message": message})
}

// RespondError writes {"error": ...}.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}

// RespondStoreError logs the database error and returns a generic 500 so
// internal detail never reaches the client.
func RespondStoreError(c *gin.Context, err error) {
	if ErrorLogger != nil {
		ErrorLogger.Printf("store error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(500, gin.H{"error": "Server error"})
}
