package profiles_services

import (
	profiles_repositories "devcollab/internal/features/profiles/repositories"
)

var profileRepository = &profiles_repositories.ProfileRepository{}

var profileService = &ProfileService{
	profileRepository: profileRepository,
}

func GetProfileService() *ProfileService {
	return profileService
}
