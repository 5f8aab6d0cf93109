package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drivingschool/admin/internal/app/models/dto"
)

// HealthController reports liveness
type HealthController struct {
	backendURL string
	storeKind  string
}

// NewHealthController creates a new HealthController
func NewHealthController(backendURL, storeKind string) *HealthController {
	return &HealthController{backendURL: backendURL, storeKind: storeKind}
}

// Ping answers pong
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
}

// Health returns the configured collaborators
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.HealthResponse{
		Status:  "ok",
		Backend: c.backendURL,
		Session: c.storeKind,
	}))
}
