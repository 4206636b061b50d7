package system_healthcheck

import (
	"devcollab/internal/downdetect"
)

var healthcheckService = NewHealthcheckService(downdetect.GetDowndetectService(), ReadDiskUsage, "/")
var healthcheckController = &HealthcheckController{
	healthcheckService,
}

func GetHealthcheckController() *HealthcheckController {
	return healthcheckController
}
