package system_healthcheck

import (
	"fmt"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	componentOK = "ok"

	maxDiskUsedPercent = 95.0
)

type DependencyChecker interface {
	CheckDatabase() error
	CheckCache() error
}

type HealthReport struct {
	Status     string            `json:"status"`
	Service    string            `json:"service"`
	Components map[string]string `json:"components"`
	Disk       *DiskUsage        `json:"disk,omitempty"`
}

func (r *HealthReport) IsHealthy() bool {
	return r.Status == StatusHealthy
}

type HealthcheckService struct {
	dependencies DependencyChecker
	readDisk     DiskUsageReader
	diskPath     string
}

func NewHealthcheckService(dependencies DependencyChecker, readDisk DiskUsageReader, diskPath string) *HealthcheckService {
	return &HealthcheckService{
		dependencies: dependencies,
		readDisk:     readDisk,
		diskPath:     diskPath,
	}
}

// Check probes database, cache and free disk space. Any failing component
// makes the whole report unhealthy.
func (s *HealthcheckService) Check() *HealthReport {
	report := &HealthReport{
		Status:     StatusHealthy,
		Service:    "devcollab",
		Components: map[string]string{},
	}

	report.record("database", s.dependencies.CheckDatabase())
	report.record("cache", s.dependencies.CheckCache())

	usage, err := s.readDisk(s.diskPath)
	if err == nil {
		report.Disk = usage
		if usage.UsedPercent >= maxDiskUsedPercent {
			err = fmt.Errorf("disk is %.1f%% full", usage.UsedPercent)
		}
	}
	report.record("disk", err)

	return report
}

func (r *HealthReport) record(component string, err error) {
	if err != nil {
		r.Components[component] = "error: " + err.Error()
		r.Status = StatusUnhealthy
		return
	}

	r.Components[component] = componentOK
}
