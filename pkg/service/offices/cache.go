package offices

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/cloudbridge-lab/minwon/pkg/domain/interfaces"
	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
)

// Cache memoizes the backend office list. Concurrent callers share one
// in-flight fetch; the result is cached only on success so a failed load is
// retried on the next call.
type Cache struct {
	backend interfaces.Backend
	group   singleflight.Group

	mu     sync.RWMutex
	loaded bool
	cached []*model.Office
}

func NewCache(backend interfaces.Backend) *Cache {
	return &Cache{backend: backend}
}

// List returns the cached office list, fetching it from the backend on the
// first call.
func (c *Cache) List(ctx context.Context) ([]*model.Office, error) {
	c.mu.RLock()
	if c.loaded {
		cached := c.cached
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do("offices", func() (any, error) {
		offices, err := c.backend.ListOffices(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cached = offices
		c.loaded = true
		c.mu.Unlock()
		return offices, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*model.Office), nil
}

// Invalidate drops the cached list so the next List call hits the backend.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.cached = nil
	c.mu.Unlock()
}
