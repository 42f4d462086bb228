package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/izlekapp/izlek_backend_v1/internal/models"
	"github.com/izlekapp/izlek_backend_v1/internal/services"
)

// StatusController serves the legacy status-check endpoints.
type StatusController struct {
	Service *services.StatusService
}

func (sc *StatusController) Create(c *gin.Context) {
	var req models.StatusCheckCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	check, err := sc.Service.Create(c.Request.Context(), req)
	writeResult(c, check, err)
}

func (sc *StatusController) List(c *gin.Context) {
	checks, err := sc.Service.List(c.Request.Context())
	writeResult(c, checks, err)
}
