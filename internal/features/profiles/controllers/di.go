package profiles_controllers

import (
	profiles_services "devcollab/internal/features/profiles/services"
)

var profileController = &ProfileController{
	profileService: profiles_services.GetProfileService(),
}

func GetProfileController() *ProfileController {
	return profileController
}
