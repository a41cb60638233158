package bounded

import "sync"

// ProgramCache stores compiled expression programs keyed by expression strings.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// WithProgramCache registers a program cache on the Adjustable configuration.
func WithProgramCache(cache ProgramCache) Option {
	return func(cfg *config) {
		cfg.programCache = cache
	}
}

// MemoryCache is a ProgramCache backed by a sync.Map. The zero value is
// ready to use.
type MemoryCache struct {
	programs sync.Map
}

// Get returns the cached program for key when present.
func (c *MemoryCache) Get(key string) (any, bool) {
	return c.programs.Load(key)
}

// Set stores a compiled program under key.
func (c *MemoryCache) Set(key string, value any) {
	c.programs.Store(key, value)
}

func (a *Adjustable[N]) programCache() ProgramCache {
	return a.cfg.programCache
}
