package users_services

import (
	"devcollab/internal/cache"
	cache_utils "devcollab/internal/util/cache"
	"sync"
)

// TokenDenylist remembers signed-out tokens until they would expire anyway.
type TokenDenylist interface {
	Revoke(tokenID string) error
	IsRevoked(tokenID string) bool
}

type ValkeyTokenDenylist struct {
	once      sync.Once
	cacheUtil *cache_utils.CacheUtil[bool]
}

func (d *ValkeyTokenDenylist) Revoke(tokenID string) error {
	revoked := true
	return d.getCacheUtil().Set(tokenID, &revoked)
}

func (d *ValkeyTokenDenylist) IsRevoked(tokenID string) bool {
	return d.getCacheUtil().Get(tokenID) != nil
}

func (d *ValkeyTokenDenylist) getCacheUtil() *cache_utils.CacheUtil[bool] {
	d.once.Do(func() {
		d.cacheUtil = cache_utils.NewCacheUtilWithExpiry[bool](
			cache.GetCache(),
			"dc_revoked_token:",
			accessTokenLifetime,
		)
	})

	return d.cacheUtil
}
