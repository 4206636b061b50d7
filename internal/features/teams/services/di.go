package teams_services

import (
	teams_repositories "devcollab/internal/features/teams/repositories"
)

var teamRepository = &teams_repositories.TeamRepository{}

var teamService = NewTeamService(teamRepository, nil)

func GetTeamService() *TeamService {
	return teamService
}
