package linked_list

import (
	"errors"
	"iter"

	"github.com/goose-lang/std"
)

// NotFound is the index Search reports when no node holds the value.
const NotFound = -1

var (
	ErrEmptyList = errors.New("linked_list: list is empty")
	ErrNotFound  = errors.New("linked_list: no node at index")
)

type Node struct {
	elem int
	id   uint64
	next *Node
}

func (n *Node) Value() int {
	return n.elem
}

// ID identifies the node for as long as it is in a list. IDs are assigned in
// insertion order and never reused by the same list.
func (n *Node) ID() uint64 {
	return n.id
}

// List is a singly-linked chain of int values with a cached length.
//
// The zero value is an empty list. A List is not safe for concurrent use;
// see package concurrent for a locked wrapper.
type List struct {
	head   *Node
	size   int
	lastID uint64
}

func New() *List {
	return &List{}
}

func (l *List) newNode(elem int) *Node {
	l.lastID++
	return &Node{elem: elem, id: l.lastID}
}

func (l *List) Len() int {
	return l.size
}

func (l *List) IsEmpty() bool {
	return l.head == nil
}

func (l *List) PushFront(elem int) {
	n := l.newNode(elem)
	n.next = l.head
	l.head = n
	l.size++
}

func (l *List) PushBack(elem int) {
	n := l.newNode(elem)
	if l.head == nil {
		l.head = n
		l.size++
		return
	}
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
	l.size++
}

// InsertAt places elem so that it ends up at index i. Indexes at or below
// zero insert at the front and indexes past the end append.
func (l *List) InsertAt(elem int, i int) {
	if i <= 0 || l.head == nil {
		l.PushFront(elem)
		return
	}
	// walk to the node at i-1
	prev := l.head
	for k := 0; k < i-1; k++ {
		if prev.next == nil {
			break
		}
		prev = prev.next
	}
	n := l.newNode(elem)
	n.next = prev.next
	prev.next = n
	l.size++
}

func (l *List) PopFront() (int, error) {
	if l.head == nil {
		return 0, ErrEmptyList
	}
	n := l.head
	l.head = n.next
	n.next = nil
	l.size--
	std.Assert(l.size >= 0)
	return n.elem, nil
}

func (l *List) PopBack() (int, error) {
	if l.head == nil {
		return 0, ErrEmptyList
	}
	if l.head.next == nil {
		return l.PopFront()
	}
	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	last := prev.next
	prev.next = nil
	l.size--
	std.Assert(l.size >= 1)
	return last.elem, nil
}

// DeleteAt removes the node at index i and returns its value. Indexes at or
// below zero remove the first node; an index with no node is a no-op that
// reports ErrNotFound.
func (l *List) DeleteAt(i int) (int, error) {
	if i <= 0 {
		return l.PopFront()
	}
	if l.head == nil {
		return 0, ErrNotFound
	}
	prev := l.head
	for k := 0; k < i-1; k++ {
		if prev.next == nil {
			return 0, ErrNotFound
		}
		prev = prev.next
	}
	victim := prev.next
	if victim == nil {
		return 0, ErrNotFound
	}
	prev.next = victim.next
	victim.next = nil
	l.size--
	return victim.elem, nil
}

// Search returns the index of the first node holding elem.
func (l *List) Search(elem int) (int, bool) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.elem == elem {
			return i, true
		}
		i++
	}
	return NotFound, false
}

func (l *List) Reverse() {
	var prev *Node
	cur := l.head
	for cur != nil {
		// detach the rest of the chain before pointing cur backwards
		rest := cur.next
		cur.next = prev
		prev = cur
		cur = rest
	}
	l.head = prev
}

// Clear unlinks every node.
func (l *List) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.next = nil
	}
	l.size = 0
}

func (l *List) Front() (int, bool) {
	if l.head == nil {
		return 0, false
	}
	return l.head.elem, true
}

func (l *List) Back() (int, bool) {
	if l.head == nil {
		return 0, false
	}
	n := l.head
	for n.next != nil {
		n = n.next
	}
	return n.elem, true
}

// Nodes iterates over the chain front to back, yielding each node's index.
// The list must not be modified during iteration.
func (l *List) Nodes() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n) {
				return
			}
			i++
		}
	}
}

// Values returns a copy of the values, front to back.
func (l *List) Values() []int {
	els := make([]int, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		els = append(els, n.elem)
	}
	return els
}
