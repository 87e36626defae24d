// Package visualizer runs list operations on behalf of a presentation layer.
// It keeps the operation history and decides which node to highlight; the
// list itself knows nothing about either.
package visualizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"sll_visualizer/heap/linked_list"
)

// MaxHistory is the number of descriptions a session keeps.
const MaxHistory = 50

// Result is the outcome of one operation.
type Result struct {
	Op          Op
	Description string
	// Value is the removed value for pops and deletes, or the index for search.
	Value int
	// OK is false when a removal found nothing or a search had no match.
	OK bool
	// Err is linked_list.ErrEmptyList or linked_list.ErrNotFound when OK is false.
	Err error
	// Highlight is the index to emphasize, valid when Highlighted is set.
	Highlight   int
	Highlighted bool
}

type Session struct {
	id        uuid.UUID
	list      *linked_list.List
	history   []string
	highlight int
	lit       bool
	log       logr.Logger
}

func NewSession(log logr.Logger) *Session {
	return &Session{
		id:   uuid.New(),
		list: linked_list.New(),
		log:  log,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// List exposes the underlying list for read-only rendering.
func (s *Session) List() *linked_list.List {
	return s.list
}

// History returns the recorded descriptions, newest first.
func (s *Session) History() []string {
	return append([]string(nil), s.history...)
}

func (s *Session) Highlight() (int, bool) {
	return s.highlight, s.lit
}

// Seed loads the sample list 10, 20, 30 without recording history.
func (s *Session) Seed() {
	for _, elem := range []int{10, 20, 30} {
		s.list.PushBack(elem)
	}
	s.log.V(1).Info("seeded", "session", s.id, "values", s.list.Values())
}

// Reset starts over with an empty list, no history and no highlight.
func (s *Session) Reset() {
	s.list = linked_list.New()
	s.history = nil
	s.lit = false
	s.log.V(1).Info("reset", "session", s.id)
}

func (s *Session) Run(op Op) Result {
	res := Result{Op: op, OK: true}
	l := s.list
	name := op.Kind.opName()

	switch op.Kind {
	case EKind.PushFront():
		l.PushFront(op.Value)
		res.Description = fmt.Sprintf("%s(%d)", name, op.Value)
		res.Highlight, res.Highlighted = 0, true
	case EKind.PushBack():
		l.PushBack(op.Value)
		res.Description = fmt.Sprintf("%s(%d)", name, op.Value)
		res.Highlight, res.Highlighted = l.Len()-1, true
	case EKind.InsertAt():
		l.InsertAt(op.Value, op.Index)
		res.Description = fmt.Sprintf("%s(value=%d, index=%d)", name, op.Value, op.Index)
		res.Highlight, res.Highlighted = max(0, min(op.Index, l.Len()-1)), true
	case EKind.PopFront():
		res.Value, res.Err = l.PopFront()
		res.Description = fmt.Sprintf("%s() → %s", name, removed(res))
	case EKind.PopBack():
		res.Value, res.Err = l.PopBack()
		res.Description = fmt.Sprintf("%s() → %s", name, removed(res))
	case EKind.DeleteAt():
		res.Value, res.Err = l.DeleteAt(op.Index)
		res.Description = fmt.Sprintf("%s(%d) → %s", name, op.Index, removed(res))
	case EKind.Search():
		res.Value, res.OK = l.Search(op.Value)
		if res.OK {
			res.Highlight, res.Highlighted = res.Value, true
		} else {
			res.Err = linked_list.ErrNotFound
		}
		res.Description = fmt.Sprintf("%s(%d) → index %d", name, op.Value, res.Value)
	case EKind.Reverse():
		l.Reverse()
		res.Description = fmt.Sprintf("%s()", name)
	default:
		res.OK = false
		res.Description = fmt.Sprintf("unsupported operation %d", uint8(op.Kind))
		s.log.Info("ignoring operation", "session", s.id, "kind", uint8(op.Kind))
		return res
	}
	if res.Err != nil {
		res.OK = false
	}

	s.highlight, s.lit = res.Highlight, res.Highlighted
	s.record(res.Description)
	s.log.V(1).Info("ran operation", "session", s.id, "op", res.Description, "size", l.Len())
	return res
}

func removed(res Result) string {
	if res.Err != nil {
		return "null"
	}
	return strconv.Itoa(res.Value)
}

func (s *Session) record(desc string) {
	s.history = append([]string{desc}, s.history...)
	if len(s.history) > MaxHistory {
		s.history = s.history[:MaxHistory]
	}
}

// Render draws the list on one line, e.g. "HEAD -> 10 -> [20] -> 30 -> NULL",
// with the highlighted node in brackets.
func (s *Session) Render() string {
	var sb strings.Builder
	sb.WriteString("HEAD")
	for i, n := range s.list.Nodes() {
		sb.WriteString(" -> ")
		if s.lit && i == s.highlight {
			fmt.Fprintf(&sb, "[%d]", n.Value())
		} else {
			sb.WriteString(strconv.Itoa(n.Value()))
		}
	}
	sb.WriteString(" -> NULL")
	return sb.String()
}

type NodeView struct {
	ID    uint64 `json:"id"`
	Value int    `json:"value"`
}

// State is a serializable snapshot of a session.
type State struct {
	Session   string     `json:"session"`
	Size      int        `json:"size"`
	Nodes     []NodeView `json:"nodes"`
	Highlight *int       `json:"highlight"`
	History   []string   `json:"history"`
}

func (s *Session) State() State {
	st := State{
		Session: s.id.String(),
		Size:    s.list.Len(),
		Nodes:   make([]NodeView, 0, s.list.Len()),
		History: s.History(),
	}
	for _, n := range s.list.Nodes() {
		st.Nodes = append(st.Nodes, NodeView{ID: n.ID(), Value: n.Value()})
	}
	if s.lit {
		h := s.highlight
		st.Highlight = &h
	}
	if st.History == nil {
		st.History = []string{}
	}
	return st
}
