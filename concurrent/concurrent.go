package concurrent

import (
	"sync"

	"sll_visualizer/heap/linked_list"
)

// List guards a linked_list.List with a single mutex. Every operation holds
// the lock for its whole duration, since the size and chain invariants span
// several links.
type List struct {
	mu sync.Mutex
	l  *linked_list.List
}

func NewList() *List {
	return &List{l: linked_list.New()}
}

func (c *List) PushFront(elem int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.l.PushFront(elem)
}

func (c *List) PushBack(elem int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.l.PushBack(elem)
}

func (c *List) InsertAt(elem int, i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.l.InsertAt(elem, i)
}

func (c *List) PopFront() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.l.PopFront()
}

func (c *List) PopBack() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.l.PopBack()
}

func (c *List) DeleteAt(i int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.l.DeleteAt(i)
}

func (c *List) Search(elem int) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.l.Search(elem)
}

func (c *List) Reverse() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.l.Reverse()
}

func (c *List) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.l.Len()
}

// Values returns a snapshot of the list contents.
func (c *List) Values() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.l.Values()
}

// Do runs f with exclusive access to the underlying list, so a sequence of
// operations is applied atomically. f must not retain l.
func (c *List) Do(f func(l *linked_list.List)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f(c.l)
}
