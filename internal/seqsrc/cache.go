package seqsrc

import "container/list"

// Cache keeps at most capacity sequences open, evicting (and closing) the
// least recently used one.
type Cache struct {
	op  Opener
	cap int
	ll  *list.List
	m   map[string]*list.Element
}

type cacheNode struct {
	ref string
	seq Seq
}

// NewCache wraps op; capacity <= 0 means 1.
func NewCache(op Opener, capacity int) *Cache {
	if capacity <= 0 {
		capacity = 1
	}
	return &Cache{op: op, cap: capacity, ll: list.New(), m: make(map[string]*list.Element, capacity)}
}

// Get returns the open sequence for ref, opening it on first use.
// Open errors are not cached.
func (c *Cache) Get(ref string) (Seq, error) {
	if e, ok := c.m[ref]; ok {
		c.ll.MoveToFront(e)
		return e.Value.(*cacheNode).seq, nil
	}
	s, err := c.op.Open(ref)
	if err != nil {
		return nil, err
	}
	c.m[ref] = c.ll.PushFront(&cacheNode{ref: ref, seq: s})
	if c.ll.Len() > c.cap {
		if tail := c.ll.Back(); tail != nil {
			c.evict(tail)
		}
	}
	return s, nil
}

func (c *Cache) evict(e *list.Element) error {
	n := e.Value.(*cacheNode)
	c.ll.Remove(e)
	delete(c.m, n.ref)
	return n.seq.Close()
}

// Len is the number of open sequences.
func (c *Cache) Len() int { return c.ll.Len() }

// Close closes every open sequence and returns the first error.
func (c *Cache) Close() error {
	var first error
	for e := c.ll.Back(); e != nil; e = c.ll.Back() {
		if err := c.evict(e); err != nil && first == nil {
			first = err
		}
	}
	return first
}
