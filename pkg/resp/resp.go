package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The frontend expects flat {"message": …} / {"error": …} bodies.

func OK(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
func Created(c *gin.Context, msg string) {
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
