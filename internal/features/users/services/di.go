package users_services

import (
	users_repositories "devcollab/internal/features/users/repositories"
)

var userRepository = &users_repositories.UserRepository{}

var userService = &UserService{
	userRepository:    userRepository,
	secretKeyProvider: &ConfigSecretKeyProvider{},
	tokenDenylist:     &ValkeyTokenDenylist{},
}

func GetUserService() *UserService {
	return userService
}
