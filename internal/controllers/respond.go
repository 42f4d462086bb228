package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/izlekapp/izlek_backend_v1/internal/services"
)

// writeResult renders a service outcome. Validation rejections travel in the
// body of a 200 response as {"error": ...} — clients detect them by payload
// shape, not status code. Anything else is a server fault.
func writeResult(c *gin.Context, v any, err error) {
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusOK, gin.H{"error": ve.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, v)
}
