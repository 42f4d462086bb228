package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/izlekapp/izlek_backend_v1/internal/middleware"
	"github.com/izlekapp/izlek_backend_v1/internal/models"
	"github.com/izlekapp/izlek_backend_v1/internal/services"
)

// ExamController runs behind the identity middleware, which guarantees a
// resolved uid on the context.
type ExamController struct {
	Service *services.ExamService
}

func (ec *ExamController) Create(c *gin.Context) {
	uid := c.GetString(middleware.UIDKey)
	var req models.ExamResultCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := ec.Service.Create(c.Request.Context(), uid, req)
	writeResult(c, result, err)
}

func (ec *ExamController) List(c *gin.Context) {
	uid := c.GetString(middleware.UIDKey)
	results, err := ec.Service.ListByUser(c.Request.Context(), uid)
	writeResult(c, results, err)
}
