package state

import (
	"fmt"

	ristretto "github.com/dgraph-io/ristretto/v2"
)

// CachedRepo is a read-through ristretto tier in front of another Repo.
// The backing repo is the source of truth; the cache may drop entries at any time.
type CachedRepo struct {
	backing Repo
	cache   *ristretto.Cache[string, any]
}

// NewCachedRepo creates a CachedRepo holding at most cacheSize entries.
func NewCachedRepo(backing Repo, cacheSize int) (*CachedRepo, error) {
	if cacheSize <= 0 {
		cacheSize = 1
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, any]{
		NumCounters: int64(cacheSize) * 10, // number of keys to track frequency of.
		MaxCost:     int64(cacheSize),      // one unit of cost per entry.
		BufferItems: 64,                    // number of keys per Get buffer.

		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create ristretto cache: %w", err)
	}
	return &CachedRepo{backing: backing, cache: cache}, nil
}

func (c *CachedRepo) Load(key string) (any, bool, error) {
	if v, ok := c.cache.Get(key); ok {
		return v, true, nil
	}
	v, ok, err := c.backing.Load(key)
	if err != nil || !ok {
		return v, ok, err
	}
	c.cache.Set(key, v, 1)
	return v, true, nil
}

func (c *CachedRepo) Store(key string, value any) error {
	if err := c.backing.Store(key, value); err != nil {
		return err
	}
	c.refresh(key, value)
	return nil
}

func (c *CachedRepo) Delete(key string) error {
	if err := c.backing.Delete(key); err != nil {
		return err
	}
	c.cache.Del(key)
	return nil
}

func (c *CachedRepo) CompareAndSwap(key string, old, new any) (bool, error) {
	swapped, err := c.backing.CompareAndSwap(key, old, new)
	if err != nil {
		c.cache.Del(key)
		return false, err
	}
	if swapped {
		c.refresh(key, new)
	}
	return swapped, nil
}

// Close stops the cache goroutines. The backing repo is left open.
func (c *CachedRepo) Close() {
	c.cache.Close()
}

// refresh drops the cached entry and re-admits the new value.
// A rejected Set only costs a later read-through.
func (c *CachedRepo) refresh(key string, value any) {
	c.cache.Del(key)
	c.cache.Set(key, value, 1)
	c.cache.Wait()
}
