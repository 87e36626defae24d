package linked_list

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// reachable counts the nodes reachable from head, giving up after limit
// steps so a cycle cannot hang the test.
func (l *List) reachable(limit int) (int, bool) {
	count := 0
	for n := l.head; n != nil; n = n.next {
		if count == limit {
			return count, false
		}
		count++
	}
	return count, true
}

func assertValues(t assert.TestingT, want []int, l *List) {
	if !slices.Equal(want, l.Values()) {
		assert.Fail(t, "values differ", "want %v, got %v", want, l.Values())
	}
}

func (l *List) wellFormed() bool {
	count, ok := l.reachable(l.size + 1)
	return ok && count == l.size
}

func TestRemovedNodeIsUnlinked(t *testing.T) {
	assert := assert.New(t)

	l := New()
	for _, elem := range []int{1, 2, 3, 4} {
		l.PushBack(elem)
	}

	first := l.head
	_, _ = l.PopFront()
	assert.Nil(first.next, "popFront")

	middle := l.head.next
	_, _ = l.DeleteAt(1)
	assert.Nil(middle.next, "deleteAt")
	assert.Equal([]int{2, 4}, l.Values())

	for n := l.head; n != nil; n = n.next {
		assert.NotSame(first, n)
		assert.NotSame(middle, n)
	}
	assert.True(l.wellFormed())
}

func TestClearUnlinksChain(t *testing.T) {
	assert := assert.New(t)

	l := New()
	l.PushBack(1)
	l.PushBack(2)
	second := l.head.next
	l.Clear()
	assert.Nil(l.head)
	assert.Nil(second.next)
	assert.True(l.wellFormed())
}

func TestReverseInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		els := rapid.SliceOf(rapid.IntRange(-50, 50)).Draw(t, "els")
		l := New()
		for _, elem := range els {
			l.PushBack(elem)
		}
		l.Reverse()
		reversed := slices.Clone(els)
		slices.Reverse(reversed)
		assertValues(t, reversed, l)
		l.Reverse()
		assertValues(t, els, l)
		assert.True(t, l.wellFormed())
	})
}

func TestInsertAtOutOfRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		els := rapid.SliceOf(rapid.IntRange(-50, 50)).Draw(t, "els")
		elem := rapid.Int().Draw(t, "elem")

		back, front, inserted := New(), New(), New()
		for _, e := range els {
			back.PushBack(e)
			front.PushBack(e)
		}
		back.PushBack(elem)
		front.PushFront(elem)

		for _, e := range els {
			inserted.PushBack(e)
		}
		inserted.InsertAt(elem, rapid.IntRange(len(els), len(els)+10).Draw(t, "past"))
		assert.Equal(t, back.Values(), inserted.Values(), "i >= size appends")

		inserted = New()
		for _, e := range els {
			inserted.PushBack(e)
		}
		inserted.InsertAt(elem, rapid.IntRange(-10, 0).Draw(t, "low"))
		assert.Equal(t, front.Values(), inserted.Values(), "i <= 0 prepends")
	})
}

func TestDeleteAtPastEndIsNoop(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		els := rapid.SliceOf(rapid.IntRange(-50, 50)).Draw(t, "els")
		l := New()
		for _, e := range els {
			l.PushBack(e)
		}
		i := rapid.IntRange(len(els), len(els)+10).Draw(t, "i")
		if i == 0 {
			// index 0 is a front removal, not out of range
			i = 1
		}
		_, err := l.DeleteAt(i)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, len(els), l.Len())
		assertValues(t, els, l)
	})
}

// TestListModel runs random operation sequences against a slice model and
// checks the size and chain invariants after every step.
func TestListModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := New()
		var model []int
		elemGen := rapid.IntRange(-5, 5)

		t.Repeat(map[string]func(*rapid.T){
			"pushFront": func(t *rapid.T) {
				elem := elemGen.Draw(t, "elem")
				l.PushFront(elem)
				model = slices.Insert(model, 0, elem)
			},
			"pushBack": func(t *rapid.T) {
				elem := elemGen.Draw(t, "elem")
				l.PushBack(elem)
				model = append(model, elem)
			},
			"insertAt": func(t *rapid.T) {
				elem := elemGen.Draw(t, "elem")
				i := rapid.IntRange(-3, len(model)+3).Draw(t, "i")
				l.InsertAt(elem, i)
				model = slices.Insert(model, min(max(i, 0), len(model)), elem)
			},
			"popFront": func(t *rapid.T) {
				v, err := l.PopFront()
				if len(model) == 0 {
					assert.ErrorIs(t, err, ErrEmptyList)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, model[0], v)
				model = model[1:]
			},
			"popBack": func(t *rapid.T) {
				v, err := l.PopBack()
				if len(model) == 0 {
					assert.ErrorIs(t, err, ErrEmptyList)
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, model[len(model)-1], v)
				model = model[:len(model)-1]
			},
			"deleteAt": func(t *rapid.T) {
				i := rapid.IntRange(-3, len(model)+3).Draw(t, "i")
				v, err := l.DeleteAt(i)
				switch {
				case len(model) == 0 && i <= 0:
					assert.ErrorIs(t, err, ErrEmptyList)
				case i >= len(model):
					assert.ErrorIs(t, err, ErrNotFound)
				default:
					i = max(i, 0)
					assert.NoError(t, err)
					assert.Equal(t, model[i], v)
					model = slices.Delete(model, i, i+1)
				}
			},
			"search": func(t *rapid.T) {
				elem := elemGen.Draw(t, "elem")
				i, ok := l.Search(elem)
				want := slices.Index(model, elem)
				assert.Equal(t, want, i)
				assert.Equal(t, want >= 0, ok)
			},
			"reverse": func(t *rapid.T) {
				l.Reverse()
				slices.Reverse(model)
			},
			"": func(t *rapid.T) {
				if !l.wellFormed() {
					t.Fatalf("size %d does not match reachable nodes", l.size)
				}
				assert.Equal(t, len(model), l.Len())
				assertValues(t, model, l)
			},
		})
	})
}
