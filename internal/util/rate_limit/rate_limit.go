package rate_limit

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/valkey-io/valkey-go"
)

type RateLimiter struct {
	client    valkey.Client
	keyPrefix string
}

type RateLimitResult struct {
	Allowed       bool      `json:"allowed"`
	Remaining     int       `json:"remaining"`
	ResetTime     time.Time `json:"resetTime"`
	RetryAfterSec int       `json:"retryAfterSec,omitempty"`
}

const (
	defaultTimeout = 5 * time.Second
	bucketTTLSec   = 300
)

// Token bucket evaluated atomically inside Valkey. Returns
// {allowed, remaining, ms until the bucket is full again}.
const tokenBucketLuaScript = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local per_minute = tonumber(ARGV[2])
local burst_limit = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local current = redis.call('HMGET', key, 'tokens', 'last_refill')
local tokens = tonumber(current[1]) or burst_limit
local last_refill = tonumber(current[2]) or now

local elapsed = math.max(0, now - last_refill)
local tokens_to_add = math.floor(elapsed * per_minute / 60000)
if tokens_to_add > 0 then
    last_refill = now
end
tokens = math.min(burst_limit, tokens + tokens_to_add)

local allowed = 0
if tokens >= 1 then
    allowed = 1
    tokens = tokens - 1
end

redis.call('HMSET', key, 'tokens', tokens, 'last_refill', last_refill)
redis.call('EXPIRE', key, ttl)

local time_to_full = 0
if tokens < burst_limit then
    time_to_full = math.ceil((burst_limit - tokens) * 60000 / per_minute)
end

return {allowed, tokens, time_to_full}
`

func NewRateLimiter(client valkey.Client, keyPrefix string) *RateLimiter {
	return &RateLimiter{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// CheckRateLimit consumes one token for subject. perMinute is the refill
// rate, burstLimit the bucket size.
func (r *RateLimiter) CheckRateLimit(subject string, perMinute, burstLimit int) (*RateLimitResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	perMinute, burstLimit = normalizeLimits(perMinute, burstLimit)

	key := r.keyPrefix + subject
	now := time.Now().UnixMilli()

	result := r.client.Do(ctx, r.client.B().Eval().
		Script(tokenBucketLuaScript).
		Numkeys(1).
		Key(key).
		Arg(fmt.Sprintf("%d", now)).
		Arg(fmt.Sprintf("%d", perMinute)).
		Arg(fmt.Sprintf("%d", burstLimit)).
		Arg(fmt.Sprintf("%d", bucketTTLSec)).
		Build())

	if result.Error() != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", result.Error())
	}

	values, err := result.AsIntSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate limit result: %w", err)
	}

	if len(values) < 3 {
		return nil, fmt.Errorf("invalid rate limit result: expected 3 values, got %d", len(values))
	}

	allowed := values[0] == 1
	timeToFull := time.Duration(values[2]) * time.Millisecond

	var retryAfterSec int
	if !allowed {
		retryAfterSec = retryAfterSeconds(perMinute)
	}

	return &RateLimitResult{
		Allowed:       allowed,
		Remaining:     int(values[1]),
		ResetTime:     time.Now().Add(timeToFull),
		RetryAfterSec: retryAfterSec,
	}, nil
}

func normalizeLimits(perMinute, burstLimit int) (int, int) {
	if perMinute <= 0 {
		perMinute = 10
	}
	if burstLimit <= 0 {
		burstLimit = max(perMinute, 1)
	}

	return perMinute, burstLimit
}

// Seconds until at least one token is back in the bucket.
func retryAfterSeconds(perMinute int) int {
	return max(1, int(math.Ceil(60.0/float64(perMinute))))
}
