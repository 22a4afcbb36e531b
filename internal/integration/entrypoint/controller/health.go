// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/spendlens/backend/internal/integration/entrypoint/dto"
)

// HealthController handles health check endpoints.
type HealthController struct {
	db *gorm.DB
}

// NewHealthController creates a new health controller instance.
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{
		db: db,
	}
}

// Check handles GET /health requests. It reports degraded with a 503 when
// the database does not answer a ping.
func (c *HealthController) Check(ctx *gin.Context) {
	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "degraded",
			Database: "unreachable",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Database: "ok",
	})
}
