package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/izlekapp/izlek_backend_v1/internal/models"
	"github.com/izlekapp/izlek_backend_v1/internal/services"
)

type RoomController struct {
	Service *services.RoomService
}

func (rc *RoomController) Create(c *gin.Context) {
	var req models.RoomCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, err := rc.Service.Create(c.Request.Context(), req)
	writeResult(c, room, err)
}

func (rc *RoomController) Join(c *gin.Context) {
	var req models.RoomJoin
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, err := rc.Service.Join(c.Request.Context(), req)
	writeResult(c, room, err)
}

func (rc *RoomController) Get(c *gin.Context) {
	room, err := rc.Service.GetByID(c.Request.Context(), c.Param("id"))
	writeResult(c, room, err)
}

func (rc *RoomController) GetByCode(c *gin.Context) {
	room, err := rc.Service.GetByCode(c.Request.Context(), c.Param("code"))
	writeResult(c, room, err)
}

func (rc *RoomController) UpdateTimer(c *gin.Context) {
	var state models.TimerState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := rc.Service.UpdateTimer(c.Request.Context(), c.Param("id"), state); err != nil {
		writeResult(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
