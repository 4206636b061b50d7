package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/system/health", c.CheckHealth)
}

// CheckHealth
// @Summary Check system health
// @Description Database, cache and disk status. Returns 503 when any component fails
// @Tags system
// @Produce json
// @Success 200 {object} system_healthcheck.HealthReport
// @Failure 503 {object} system_healthcheck.HealthReport
// @Router /system/health [get]
func (c *HealthcheckController) CheckHealth(ctx *gin.Context) {
	report := c.healthcheckService.Check()

	if !report.IsHealthy() {
		ctx.JSON(http.StatusServiceUnavailable, report)
		return
	}

	ctx.JSON(http.StatusOK, report)
}
