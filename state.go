// Copyright 2026 David Cowley
// Licensed under the MIT license. See license text in the LICENSE file.

package hwstate

import (
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Errors reported by the codec. All of them are contract violations on the
// caller's side: they are raised at the point of misuse and never coerced
// into a default value.
//
var (
	// ErrUnsupportedWidth reports a width outside the supported catalog.
	ErrUnsupportedWidth = errors.New("unsupported bus width")
	// ErrIndexOutOfRange reports a line or slice index beyond the bus width.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrOperandCount reports a merge whose operands do not form a supported width.
	ErrOperandCount = errors.New("operand count mismatch")
)

// A Level is the tri-state value of a single line. The value bit sits in bit
// 0 and the disconnected bit is tagged into bit 1, so the three levels are
// distinct constants rather than an interpreted 2-bit number.
//
type Level uint8

const (
	Low          Level = 0 // driven low
	High         Level = 1 // driven high
	Disconnected Level = 2 // floating, undriven
)

func (l Level) String() string {
	switch l {
	case Low:
		return "0"
	case High:
		return "1"
	case Disconnected:
		return "X"
	}
	return "?"
}

// A State is the tri-state value of a bus at one simulation instant: two
// parallel planes of Width bits each. Bit i of the value plane is the logic
// level of line i; bit i of the disconnected plane is set if line i is
// floating, in which case its value bit is always zero.
//
// The zero State has width zero and is not usable; states are obtained from
// Compose, Driven, AllDisconnected, Merge or Split. A State is a value type
// and may be copied and compared with Equal.
//
type State struct {
	value uint256.Int
	disc  uint256.Int
	width Width
}

var one = uint256.NewInt(1)

// mask returns the w-bit line mask. For w = 256 the shift wraps to zero and
// the subtraction yields all ones, so no tier needs a special case.
func mask(w Width) uint256.Int {
	var m uint256.Int
	m.Lsh(one, uint(w))
	m.Sub(&m, one)
	return m
}

// Compose builds a w lines wide State from its value and disconnected
// planes. Both planes are masked to w bits, and value bits of disconnected
// lines are cleared, so the result is well formed whatever the caller passed
// above bit w-1.
//
func Compose(value, disconnected *uint256.Int, w Width) (State, error) {
	if !w.Valid() {
		return State{}, errors.Wrapf(ErrUnsupportedWidth, "compose %d lines", w)
	}
	m := mask(w)
	s := State{width: w}
	s.disc.And(disconnected, &m)
	s.value.And(value, &m)
	var driven uint256.Int
	driven.Not(&s.disc)
	s.value.And(&s.value, &driven)
	return s, nil
}

// Decompose returns the value and disconnected planes of s. It is the exact
// inverse of Compose over well formed planes. Collaborators that persist bus
// values must use Decompose and Compose rather than copying a State, so that
// the in-memory layout can change without breaking saved circuits.
//
func (s State) Decompose() (value, disconnected uint256.Int) {
	return s.value, s.disc
}

// Driven builds a fully connected State carrying the given value plane, as
// produced by a gate or adapter driving every line of its output bus.
//
func Driven(value *uint256.Int, w Width) (State, error) {
	var zero uint256.Int
	return Compose(value, &zero, w)
}

// AllDisconnected returns the canonical default value of an undriven w lines
// wide pin or bus: every line floating, every value bit zero.
//
func AllDisconnected(w Width) (State, error) {
	if !w.Valid() {
		return State{}, errors.Wrapf(ErrUnsupportedWidth, "disconnected state of %d lines", w)
	}
	s := State{width: w}
	s.disc = mask(w)
	return s, nil
}

// Width returns the number of lines in s.
//
func (s State) Width() Width { return s.width }

// Line returns the level of line i.
//
func (s State) Line(i int) (Level, error) {
	if i < 0 || i >= int(s.width) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "line %d of a %d lines wide state", i, s.width)
	}
	v := s.value[i>>6] >> (uint(i) & 63) & 1
	d := s.disc[i>>6] >> (uint(i) & 63) & 1
	return Level(v | d<<1), nil
}

// Toggle returns s with the value bit of line i flipped and line i forced to
// connected. It is meant for manually driven input pins only: applying it to
// a state produced by Merge, Split or a gate evaluation would discard the
// disconnect information of a derived value.
//
func (s State) Toggle(i int) (State, error) {
	if i < 0 || i >= int(s.width) {
		return State{}, errors.Wrapf(ErrIndexOutOfRange, "toggle line %d of a %d lines wide state", i, s.width)
	}
	s.value[i>>6] ^= 1 << (uint(i) & 63)
	s.disc[i>>6] &^= 1 << (uint(i) & 63)
	return s, nil
}

// Merge concatenates the given states into one wider State, operand i
// occupying lines [i*L, (i+1)*L) where L is the shared operand width. The
// value and disconnected planes are concatenated independently. All operands
// must have the same width and the total width must be in the supported
// catalog: four 1 line operands form a 4 line bus, and from there each width
// is the 2-way merge of the previous one.
//
func Merge(states ...State) (State, error) {
	if len(states) < 2 {
		return State{}, errors.Wrapf(ErrOperandCount, "merge of %d operands", len(states))
	}
	l := states[0].width
	for _, op := range states[1:] {
		if op.width != l {
			return State{}, errors.Wrapf(ErrOperandCount, "merge of mixed widths %d and %d", l, op.width)
		}
	}
	total := int(l) * len(states)
	if total > int(W256) || !Width(total).Valid() {
		return State{}, errors.Wrapf(ErrOperandCount, "%d operands of width %d do not form a supported width", len(states), l)
	}
	out := State{width: Width(total)}
	var t uint256.Int
	for i, op := range states {
		sh := uint(i) * uint(l)
		out.value.Or(&out.value, t.Lsh(&op.value, sh))
		out.disc.Or(&out.disc, t.Lsh(&op.disc, sh))
	}
	return out, nil
}

// Split extracts the i-th l lines wide slice of s, lines [i*l, (i+1)*l) of
// both planes. It is the exact inverse of Merge over the same partition.
//
func (s State) Split(l Width, i int) (State, error) {
	if !l.Valid() {
		return State{}, errors.Wrapf(ErrUnsupportedWidth, "split into %d line slices", l)
	}
	if i < 0 || (i+1)*int(l) > int(s.width) {
		return State{}, errors.Wrapf(ErrIndexOutOfRange, "slice %d of width %d in a %d lines wide state", i, l, s.width)
	}
	m := mask(l)
	sh := uint(i) * uint(l)
	out := State{width: l}
	out.value.Rsh(&s.value, sh)
	out.value.And(&out.value, &m)
	out.disc.Rsh(&s.disc, sh)
	out.disc.And(&out.disc, &m)
	return out, nil
}

// Equal reports whether s and t have the same width and identical planes.
//
func (s State) Equal(t State) bool {
	return s.width == t.width && s.value.Eq(&t.value) && s.disc.Eq(&t.disc)
}

// IsAllDisconnected reports whether every line of s is floating.
//
func (s State) IsAllDisconnected() bool {
	m := mask(s.width)
	return s.disc.Eq(&m)
}

// String renders s with one character per line, most significant line first:
// 1 and 0 for driven lines, X for floating ones.
//
func (s State) String() string {
	var b strings.Builder
	for i := int(s.width) - 1; i >= 0; i-- {
		l, _ := s.Line(i)
		b.WriteString(l.String())
	}
	return b.String()
}
