package asset

// Cache memoizes a Source for the duration of one scan pass, so identical
// emoji in one text read their bytes once. Read errors are cached too.
// A Cache is owned by a single pass and is not safe for concurrent use.
type Cache struct {
	src     Source
	entries map[string]cacheEntry
	reads   int
}

type cacheEntry struct {
	data []byte
	err  error
}

// NewCache wraps src.
func NewCache(src Source) *Cache {
	return &Cache{src: src, entries: make(map[string]cacheEntry)}
}

// ReadAsset implements Source.
func (c *Cache) ReadAsset(name string) ([]byte, error) {
	if e, ok := c.entries[name]; ok {
		return e.data, e.err
	}
	c.reads++
	data, err := c.src.ReadAsset(name)
	c.entries[name] = cacheEntry{data: data, err: err}
	return data, err
}

// Reads returns how many reads reached the underlying source.
func (c *Cache) Reads() int { return c.reads }
