package cache_utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"devcollab/internal/cache"

	"github.com/valkey-io/valkey-go"
)

const (
	DefaultCacheTimeout = 10 * time.Second
	DefaultCacheExpiry  = 10 * time.Minute
)

type CacheUtil[T any] struct {
	client  valkey.Client
	prefix  string
	timeout time.Duration
	expiry  time.Duration
}

func NewCacheUtil[T any](client valkey.Client, prefix string) *CacheUtil[T] {
	return NewCacheUtilWithExpiry[T](client, prefix, DefaultCacheExpiry)
}

func NewCacheUtilWithExpiry[T any](client valkey.Client, prefix string, expiry time.Duration) *CacheUtil[T] {
	return &CacheUtil[T]{
		client:  client,
		prefix:  prefix,
		timeout: DefaultCacheTimeout,
		expiry:  expiry,
	}
}

// TestCacheConnection round-trips a value through Valkey.
func TestCacheConnection() error {
	cacheUtil := NewCacheUtil[string](cache.GetCache(), "test:")

	testKey := "connection_test"
	testValue := "valkey_is_working"

	if err := cacheUtil.Set(testKey, &testValue); err != nil {
		return fmt.Errorf("failed to write test value: %w", err)
	}

	retrievedValue := cacheUtil.Get(testKey)
	if retrievedValue == nil {
		return errors.New("could not retrieve cached value")
	}

	if *retrievedValue != testValue {
		return errors.New("retrieved value does not match expected")
	}

	cacheUtil.Invalidate(testKey)

	if cacheUtil.Get(testKey) != nil {
		return errors.New("test key was not properly invalidated")
	}

	return nil
}

// Get treats read failures as a miss. Use Lookup when the caller must tell
// them apart.
func (c *CacheUtil[T]) Get(key string) *T {
	item, err := c.Lookup(key)
	if err != nil {
		return nil
	}

	return item
}

// Lookup returns nil, nil when the key does not exist.
func (c *CacheUtil[T]) Lookup(key string) (*T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	fullKey := c.prefix + key
	result := c.client.Do(ctx, c.client.B().Get().Key(fullKey).Build())

	if err := result.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read %s: %w", fullKey, err)
	}

	data, err := result.AsBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fullKey, err)
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", fullKey, err)
	}

	return &item, nil
}

func (c *CacheUtil[T]) Set(key string, item *T) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	data, err := json.Marshal(item)
	if err != nil {
		return err
	}

	fullKey := c.prefix + key
	return c.client.Do(ctx, c.client.B().Set().Key(fullKey).Value(string(data)).Ex(c.expiry).Build()).Error()
}

func (c *CacheUtil[T]) Invalidate(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	fullKey := c.prefix + key
	c.client.Do(ctx, c.client.B().Del().Key(fullKey).Build())
}
