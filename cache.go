package filelog

// messageCache is a bounded FIFO of formatted entries. When full, offering a new
// entry discards the oldest one.
type messageCache struct {
	entries []string
	head    int // index of the oldest entry
	size    int
	dropped int // entries discarded since the last drain
}

// newMessageCache creates an empty cache holding at most capacity entries.
func newMessageCache(capacity int) *messageCache {
	if capacity < 1 {
		capacity = DefaultCacheCapacity
	}
	return &messageCache{entries: make([]string, capacity)}
}

// offer appends line, dropping the oldest entry first when at capacity.
func (c *messageCache) offer(line string) {
	if c.size == len(c.entries) {
		c.entries[c.head] = line
		c.head = (c.head + 1) % len(c.entries)
		c.dropped++
		return
	}
	c.entries[(c.head+c.size)%len(c.entries)] = line
	c.size++
}

// drainAll removes and returns every entry, oldest first.
func (c *messageCache) drainAll() []string {
	out := make([]string, 0, c.size)
	for i := 0; i < c.size; i++ {
		idx := (c.head + i) % len(c.entries)
		out = append(out, c.entries[idx])
		c.entries[idx] = ""
	}
	c.head, c.size, c.dropped = 0, 0, 0
	return out
}

// pending returns the number of entries waiting to be drained.
func (c *messageCache) pending() int {
	return c.size
}

// capacity returns the cache bound.
func (c *messageCache) capacity() int {
	return len(c.entries)
}
