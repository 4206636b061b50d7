package audit_logs

import (
	profiles_services "devcollab/internal/features/profiles/services"
	projects_services "devcollab/internal/features/projects/services"
	teams_services "devcollab/internal/features/teams/services"
	users_services "devcollab/internal/features/users/services"
	"devcollab/internal/util/logger"
)

var auditLogRepository = &AuditLogRepository{}
var auditLogService = &AuditLogService{
	auditLogRepository: auditLogRepository,
	logger:             logger.GetLogger(),
}
var auditLogController = &AuditLogController{
	auditLogService: auditLogService,
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}

func GetAuditLogController() *AuditLogController {
	return auditLogController
}

func SetupDependencies() {
	users_services.GetUserService().SetAuditLogWriter(auditLogService)
	profiles_services.GetProfileService().SetAuditLogWriter(auditLogService)
	projects_services.GetProjectService().SetAuditLogWriter(auditLogService)
	teams_services.GetTeamService().SetAuditLogWriter(auditLogService)
}
