package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/izlekapp/izlek_backend_v1/internal/models"
	"github.com/izlekapp/izlek_backend_v1/internal/services"
)

type ProgramController struct {
	Service *services.ProgramService
}

func (pc *ProgramController) Create(c *gin.Context) {
	var req models.ProgramCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	program, err := pc.Service.Create(c.Request.Context(), req)
	writeResult(c, program, err)
}

func (pc *ProgramController) ListByProfile(c *gin.Context) {
	programs, err := pc.Service.ListByProfile(c.Request.Context(), c.Param("profile_id"))
	writeResult(c, programs, err)
}

func (pc *ProgramController) Update(c *gin.Context) {
	var req models.ProgramUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	program, err := pc.Service.Update(c.Request.Context(), c.Param("id"), req)
	writeResult(c, program, err)
}

func (pc *ProgramController) Delete(c *gin.Context) {
	deleted, err := pc.Service.Delete(c.Request.Context(), c.Param("id"))
	writeResult(c, gin.H{"deleted": deleted}, err)
}
