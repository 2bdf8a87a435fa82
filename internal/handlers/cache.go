package handlers

import "sync"

// pageCache memoises rendered pages. Pages are pure functions of the edition,
// the path and the menu state, so entries never expire.
type pageCache struct {
	mu    sync.RWMutex
	items map[pageKey][]byte
}

type pageKey struct {
	path     string
	menuOpen bool
}

func newPageCache() *pageCache {
	return &pageCache{items: map[pageKey][]byte{}}
}

func (c *pageCache) get(key pageKey) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	body, ok := c.items[key]
	return body, ok
}

func (c *pageCache) put(key pageKey, body []byte) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.items[key] = body
	c.mu.Unlock()
}

func (c *pageCache) size() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
