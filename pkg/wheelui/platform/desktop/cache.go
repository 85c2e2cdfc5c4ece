package desktop

// lru keeps the most recently used values and releases the rest.
type lru[V any] struct {
	values  map[string]V
	order   []string // least recently used first
	maxSize int
	release func(V)
}

func newLRU[V any](maxSize int, release func(V)) *lru[V] {
	return &lru[V]{
		values:  make(map[string]V),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		release: release,
	}
}

func (c *lru[V]) Get(key string) (V, bool) {
	v, ok := c.values[key]
	if ok {
		c.moveToEnd(key)
	}
	return v, ok
}

func (c *lru[V]) Set(key string, v V) {
	if old, exists := c.values[key]; exists {
		if c.release != nil {
			c.release(old)
		}
		c.values[key] = v
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.values[key] = v
	c.order = append(c.order, key)
}

func (c *lru[V]) Len() int {
	return len(c.order)
}

func (c *lru[V]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *lru[V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if v, exists := c.values[oldest]; exists {
		if c.release != nil {
			c.release(v)
		}
		delete(c.values, oldest)
	}
}

// Destroy releases every cached value.
func (c *lru[V]) Destroy() {
	if c.release != nil {
		for _, v := range c.values {
			c.release(v)
		}
	}
	c.values = make(map[string]V)
	c.order = c.order[:0]
}
