package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every response body carries a numeric status and a message, mirroring the
// contract the deployed frontends already consume. Failures additionally
// carry the underlying error text.
func okResponse(c *gin.Context, body gin.H) {
	body["status"] = http.StatusOK
	c.JSON(http.StatusOK, body)
}

func errorResponse(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  http.StatusInternalServerError,
		"message": message,
		"error":   err.Error(),
	})
}
