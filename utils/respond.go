// utils/respond.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the flat error body used by every failure path.
// Internal detail stays in the server log; clients only see the message.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
