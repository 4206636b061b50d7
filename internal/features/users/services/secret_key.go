package users_services

import (
	"devcollab/internal/config"
	"errors"
)

type SecretKeyProvider interface {
	GetSecretKey() (string, error)
}

// ConfigSecretKeyProvider signs tokens with JWT_SECRET.
type ConfigSecretKeyProvider struct{}

func (p *ConfigSecretKeyProvider) GetSecretKey() (string, error) {
	secret := config.GetEnv().JwtSecret
	if secret == "" {
		return "", errors.New("jwt secret is not configured")
	}

	return secret, nil
}
