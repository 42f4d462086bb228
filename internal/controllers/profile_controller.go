package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/izlekapp/izlek_backend_v1/internal/models"
	"github.com/izlekapp/izlek_backend_v1/internal/services"
)

type ProfileController struct {
	Service *services.ProfileService
}

func (pc *ProfileController) Create(c *gin.Context) {
	var req models.ProfileCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := pc.Service.Create(c.Request.Context(), req)
	writeResult(c, profile, err)
}

func (pc *ProfileController) Get(c *gin.Context) {
	profile, err := pc.Service.GetByID(c.Request.Context(), c.Param("id"))
	writeResult(c, profile, err)
}

func (pc *ProfileController) GetByFirebaseUID(c *gin.Context) {
	profile, err := pc.Service.GetByFirebaseUID(c.Request.Context(), c.Param("firebase_uid"))
	writeResult(c, profile, err)
}
