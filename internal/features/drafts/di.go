package drafts

import (
	profiles_services "devcollab/internal/features/profiles/services"
	projects_services "devcollab/internal/features/projects/services"
	teams_services "devcollab/internal/features/teams/services"
	"devcollab/internal/util/logger"
)

var draftService = &DraftService{
	store:    &valkeyDraftStore{},
	limiter:  &valkeySubmitLimiter{},
	projects: projects_services.GetProjectService(),
	teams:    teams_services.GetTeamService(),
	profiles: profiles_services.GetProfileService(),
	logger:   logger.GetLogger(),
}
var draftController = &DraftController{
	draftService: draftService,
}

func GetDraftService() *DraftService {
	return draftService
}

func GetDraftController() *DraftController {
	return draftController
}
