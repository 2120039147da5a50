package aggregate

// counter tallies keys and remembers the order in which each key first appeared.
type counter[K comparable] struct {
	order  []K
	counts map[K]int
}

func newCounter[K comparable]() *counter[K] {
	return &counter[K]{counts: map[K]int{}}
}

func (c *counter[K]) add(key K) {
	c.addN(key, 1)
}

func (c *counter[K]) addN(key K, n int) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

func (c *counter[K]) each(fn func(key K, count int)) {
	for _, key := range c.order {
		fn(key, c.counts[key])
	}
}

func (c *counter[K]) len() int {
	return len(c.order)
}
