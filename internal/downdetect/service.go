package downdetect

import (
	"fmt"

	"devcollab/internal/storage"
	cache_utils "devcollab/internal/util/cache"
)

// DowndetectService probes the remote dependencies every request relies on.
type DowndetectService struct{}

func (s *DowndetectService) CheckDatabase() error {
	if err := storage.GetDb().Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database check failed: %w", err)
	}

	return nil
}

func (s *DowndetectService) CheckCache() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cache connection test panicked: %v", r)
		}
	}()

	if err := cache_utils.TestCacheConnection(); err != nil {
		return fmt.Errorf("cache check failed: %w", err)
	}

	return nil
}
