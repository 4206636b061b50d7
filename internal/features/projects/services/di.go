package projects_services

import (
	projects_repositories "devcollab/internal/features/projects/repositories"
)

var projectRepository = &projects_repositories.ProjectRepository{}

var projectService = NewProjectService(projectRepository, nil, RandomViews)

func GetProjectService() *ProjectService {
	return projectService
}
