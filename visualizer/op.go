package visualizer

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/JeffreyRichter/enum/enum"
	"github.com/pkg/errors"
)

var EKind = Kind(0)

// Kind names a list operation.
type Kind uint8

func (Kind) None() Kind      { return Kind(0) }
func (Kind) PushFront() Kind { return Kind(1) }
func (Kind) PushBack() Kind  { return Kind(2) }
func (Kind) InsertAt() Kind  { return Kind(3) }
func (Kind) PopFront() Kind  { return Kind(4) }
func (Kind) PopBack() Kind   { return Kind(5) }
func (Kind) DeleteAt() Kind  { return Kind(6) }
func (Kind) Search() Kind    { return Kind(7) }
func (Kind) Reverse() Kind   { return Kind(8) }

func (k Kind) String() string {
	return enum.StringInt(k, reflect.TypeOf(k))
}

// Parse is case-insensitive, so both "pushBack" and "PushBack" are accepted.
func (k *Kind) Parse(s string) error {
	val, err := enum.Parse(reflect.TypeOf(k), s, true)
	if err == nil {
		*k = val.(Kind)
	}
	return err
}

// opName is the lower camel case form used in descriptions, e.g. "pushBack".
func (k Kind) opName() string {
	s := k.String()
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func (k Kind) takesValue() bool {
	return k == EKind.PushFront() || k == EKind.PushBack() || k == EKind.InsertAt() || k == EKind.Search()
}

func (k Kind) takesIndex() bool {
	return k == EKind.InsertAt() || k == EKind.DeleteAt()
}

// Op is one requested list operation. Value and Index are only meaningful
// for kinds that take them.
type Op struct {
	Kind  Kind
	Value int
	Index int
}

// ParseOp parses a line like "pushBack 10", "insertAt 15 1" or "reverse".
// The value comes before the index.
func ParseOp(line string) (Op, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Op{}, errors.New("empty operation")
	}

	var op Op
	if err := op.Kind.Parse(fields[0]); err != nil || op.Kind == EKind.None() {
		return Op{}, errors.Errorf("unknown operation %q", fields[0])
	}

	args := fields[1:]
	want := 0
	if op.Kind.takesValue() {
		want++
	}
	if op.Kind.takesIndex() {
		want++
	}
	if len(args) != want {
		return Op{}, errors.Errorf("%s takes %d argument(s), got %d", op.Kind.opName(), want, len(args))
	}

	var err error
	if op.Kind.takesValue() {
		if op.Value, err = parseInt(args[0]); err != nil {
			return Op{}, errors.Wrapf(err, "%s value", op.Kind.opName())
		}
		args = args[1:]
	}
	if op.Kind.takesIndex() {
		if op.Index, err = parseInt(args[0]); err != nil {
			return Op{}, errors.Wrapf(err, "%s index", op.Kind.opName())
		}
	}
	return op, nil
}

// parseInt accepts any finite number and truncates it toward zero.
func parseInt(s string) (int, error) {
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("%q is not a number", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("%q is not a finite number", s)
	}
	f = math.Trunc(f)
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, errors.Errorf("%q is out of range", s)
	}
	return int(f), nil
}
