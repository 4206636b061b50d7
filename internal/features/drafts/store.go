package drafts

import (
	"sync"
	"time"

	"devcollab/internal/cache"
	cache_utils "devcollab/internal/util/cache"
	rate_limit "devcollab/internal/util/rate_limit"
)

const (
	draftLifetime         = 24 * time.Hour
	draftKeyPrefix        = "dc_draft:"
	submitRateLimitPrefix = "rate_limit:submit:"
	submissionsPerMinute  = 5
	submissionsBurstLimit = 5
)

// draftStore returns nil, nil for a missing or expired draft.
type draftStore interface {
	Get(key string) (*Draft, error)
	Set(key string, draft *Draft) error
	Invalidate(key string)
}

type submitLimiter interface {
	CheckRateLimit(subject string, perMinute, burstLimit int) (*rate_limit.RateLimitResult, error)
}

type valkeyDraftStore struct {
	once      sync.Once
	cacheUtil *cache_utils.CacheUtil[Draft]
}

func (s *valkeyDraftStore) Get(key string) (*Draft, error) {
	return s.getCacheUtil().Lookup(key)
}

func (s *valkeyDraftStore) Set(key string, draft *Draft) error {
	return s.getCacheUtil().Set(key, draft)
}

func (s *valkeyDraftStore) Invalidate(key string) {
	s.getCacheUtil().Invalidate(key)
}

func (s *valkeyDraftStore) getCacheUtil() *cache_utils.CacheUtil[Draft] {
	s.once.Do(func() {
		s.cacheUtil = cache_utils.NewCacheUtilWithExpiry[Draft](cache.GetCache(), draftKeyPrefix, draftLifetime)
	})

	return s.cacheUtil
}

type valkeySubmitLimiter struct {
	once    sync.Once
	limiter *rate_limit.RateLimiter
}

func (l *valkeySubmitLimiter) CheckRateLimit(
	subject string,
	perMinute, burstLimit int,
) (*rate_limit.RateLimitResult, error) {
	l.once.Do(func() {
		l.limiter = rate_limit.NewRateLimiter(cache.GetCache(), submitRateLimitPrefix)
	})

	return l.limiter.CheckRateLimit(subject, perMinute, burstLimit)
}
