package system_healthcheck

import (
	"errors"
	"net/http"
	"testing"

	test_utils "devcollab/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDependencies struct {
	databaseErr error
	cacheErr    error
}

func (f *fakeDependencies) CheckDatabase() error { return f.databaseErr }
func (f *fakeDependencies) CheckCache() error    { return f.cacheErr }

func diskAt(usedPercent float64) DiskUsageReader {
	return func(path string) (*DiskUsage, error) {
		return &DiskUsage{Path: path, TotalBytes: 100, FreeBytes: 100 - uint64(usedPercent), UsedPercent: usedPercent}, nil
	}
}

func Test_Check_WhenAllComponentsUp_ReportsHealthy(t *testing.T) {
	service := NewHealthcheckService(&fakeDependencies{}, diskAt(40), "/")

	report := service.Check()

	assert.True(t, report.IsHealthy())
	assert.Equal(t, map[string]string{"database": "ok", "cache": "ok", "disk": "ok"}, report.Components)
	assert.Equal(t, "/", report.Disk.Path)
}

func Test_Check_WhenCacheDown_ReportsUnhealthy(t *testing.T) {
	service := NewHealthcheckService(&fakeDependencies{cacheErr: errors.New("connection refused")}, diskAt(40), "/")

	report := service.Check()

	assert.Equal(t, StatusUnhealthy, report.Status)
	assert.Equal(t, "error: connection refused", report.Components["cache"])
	assert.Equal(t, "ok", report.Components["database"])
}

func Test_Check_WhenDiskAlmostFull_ReportsUnhealthy(t *testing.T) {
	service := NewHealthcheckService(&fakeDependencies{}, diskAt(97.5), "/")

	report := service.Check()

	assert.False(t, report.IsHealthy())
	assert.Equal(t, "error: disk is 97.5% full", report.Components["disk"])
}

func Test_CheckHealth_ViaApi_MapsReportToStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dependencies := &fakeDependencies{}
	controller := &HealthcheckController{NewHealthcheckService(dependencies, diskAt(10), "/")}

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api/v1"))

	test_utils.MakeGetRequest(t, router, "/api/v1/system/health", "", http.StatusOK)

	dependencies.databaseErr = errors.New("database check failed: timeout")
	resp := test_utils.MakeGetRequest(t, router, "/api/v1/system/health", "", http.StatusServiceUnavailable)
	assert.Contains(t, string(resp.Body), `"status":"unhealthy"`)
}
