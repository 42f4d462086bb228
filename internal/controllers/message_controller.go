package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/izlekapp/izlek_backend_v1/internal/models"
	"github.com/izlekapp/izlek_backend_v1/internal/services"
)

type MessageController struct {
	Service *services.MessageService
}

func (mc *MessageController) Create(c *gin.Context) {
	var req models.MessageCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	message, err := mc.Service.Create(c.Request.Context(), req)
	writeResult(c, message, err)
}

func (mc *MessageController) ListByRoom(c *gin.Context) {
	messages, err := mc.Service.ListByRoom(c.Request.Context(), c.Param("room_id"))
	writeResult(c, messages, err)
}
