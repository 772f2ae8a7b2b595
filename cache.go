package main

import "sync"

// resultCache memoizes solve results by canonical state key. Unbounded
// within one session; the owner drops it whenever parameters or the set
// of fields changes, because results depend on parameters but the key
// does not.
type resultCache struct {
	mu sync.Mutex
	m  map[string]*SearchResult
}

func newResultCache() *resultCache {
	return &resultCache{m: make(map[string]*SearchResult)}
}

func (c *resultCache) get(key string) (*SearchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.m[key]
	return r, ok
}

func (c *resultCache) put(key string, r *SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = r
}

func (c *resultCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = make(map[string]*SearchResult)
}

func (c *resultCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}
