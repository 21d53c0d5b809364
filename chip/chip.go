// Copyright 2026 David Cowley
// Licensed under the MIT license. See license text in the LICENSE file.

// Package chip catalogs the chip types of the simulator and classifies them,
// so that a simulation engine knows which value operation a given chip
// performs: bus origins and termini relay a named bus, mergers and splitters
// change bus width, pins carry a direction and a width.
//
// Type identifiers are referenced by the persisted circuit format and are
// stable across versions: numeric values are assigned explicitly, groups
// leave gaps for growth, and existing values are never renumbered.
//
package chip

import (
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"github.com/dcowley/hwstate"
)

// A Type identifies one chip kind in the catalog.
//
type Type uint16

// Gates, memory and display chips.
//
const (
	Nand     Type = 0
	Not      Type = 1
	And      Type = 2
	Or       Type = 3
	Xor      Type = 4
	Mux      Type = 5
	DFF      Type = 6
	Register Type = 7
	RAM      Type = 8
	ROM      Type = 9
	Display  Type = 10
)

// Bus origins drive a named bus; each has a corresponding terminus of the
// same width consuming it.
//
const (
	BusOrigin1   Type = 16
	BusOrigin4   Type = 17
	BusOrigin8   Type = 18
	BusOrigin16  Type = 19
	BusOrigin32  Type = 20
	BusOrigin64  Type = 21
	BusOrigin128 Type = 22
	BusOrigin256 Type = 23

	BusTerminus1   Type = 24
	BusTerminus4   Type = 25
	BusTerminus8   Type = 26
	BusTerminus16  Type = 27
	BusTerminus32  Type = 28
	BusTerminus64  Type = 29
	BusTerminus128 Type = 30
	BusTerminus256 Type = 31
)

// Width-changing adapters, named after the width they produce (mergers) or
// consume (splitters). Merger4 combines four 1 line operands; every other
// adapter is a 2-way doubling.
//
const (
	Merger4   Type = 32
	Merger8   Type = 33
	Merger16  Type = 34
	Merger32  Type = 35
	Merger64  Type = 36
	Merger128 Type = 37
	Merger256 Type = 38

	Splitter4   Type = 40
	Splitter8   Type = 41
	Splitter16  Type = 42
	Splitter32  Type = 43
	Splitter64  Type = 44
	Splitter128 Type = 45
	Splitter256 Type = 46
)

// Input and output pins, one per supported width.
//
const (
	Input1   Type = 48
	Input4   Type = 49
	Input8   Type = 50
	Input16  Type = 51
	Input32  Type = 52
	Input64  Type = 53
	Input128 Type = 54
	Input256 Type = 55

	Output1   Type = 56
	Output4   Type = 57
	Output8   Type = 58
	Output16  Type = 59
	Output32  Type = 60
	Output64  Type = 61
	Output128 Type = 62
	Output256 Type = 63
)

// Errors reported by the classifier.
//
var (
	// ErrUnknownType reports an identifier absent from the catalog.
	ErrUnknownType = errors.New("unknown chip type")
	// ErrUnsupportedType reports a type the requested classification does not apply to.
	ErrUnsupportedType = errors.New("unsupported chip type")
)

type classFlags uint8

const (
	fOrigin classFlags = 1 << iota
	fTerminus
	fRom
	fMerger
	fSplitter
	fInput
	fOutput
)

type entry struct {
	name   string
	flags  classFlags
	width  hwstate.Width // bus, pin or adapter wide width
	narrow hwstate.Width // adapter operand width
	fanout int           // adapter operand count
	pair   Type          // origin -> terminus
}

// catalog and the inverse indexes below are filled during package
// initialization and read-only from then on.
var (
	catalog = map[Type]entry{
		Nand:     {name: "NAND"},
		Not:      {name: "NOT"},
		And:      {name: "AND"},
		Or:       {name: "OR"},
		Xor:      {name: "XOR"},
		Mux:      {name: "MUX"},
		DFF:      {name: "DFF"},
		Register: {name: "Register"},
		RAM:      {name: "RAM"},
		ROM:      {name: "ROM", flags: fRom},
		Display:  {name: "Display"},
	}

	inputPins   = map[hwstate.Width]Type{}
	outputPins  = map[hwstate.Width]Type{}
	mergerOf    = map[hwstate.Width]Type{}
	splitterOf  = map[hwstate.Width]Type{}
	sortedTypes []Type
)

func init() {
	ws := hwstate.Widths()
	for i, w := range ws {
		bw := w.String()
		origin, terminus := BusOrigin1+Type(i), BusTerminus1+Type(i)
		catalog[origin] = entry{name: "BusOrigin" + bw, flags: fOrigin, width: w, pair: terminus}
		catalog[terminus] = entry{name: "BusTerminus" + bw, flags: fTerminus, width: w}

		in, out := Input1+Type(i), Output1+Type(i)
		catalog[in] = entry{name: "Input" + bw, flags: fInput, width: w}
		catalog[out] = entry{name: "Output" + bw, flags: fOutput, width: w}
		inputPins[w] = in
		outputPins[w] = out
	}
	// adapters exist for every width that is the merge of narrower ones
	for i, w := range ws[1:] {
		narrow := ws[i]
		fanout := int(w / narrow)
		nw := narrow.String()
		merger, splitter := Merger4+Type(i), Splitter4+Type(i)
		catalog[merger] = entry{
			name: "Merge" + nw + "to" + w.String(), flags: fMerger,
			width: w, narrow: narrow, fanout: fanout,
		}
		catalog[splitter] = entry{
			name: "Split" + w.String() + "to" + nw, flags: fSplitter,
			width: w, narrow: narrow, fanout: fanout,
		}
		mergerOf[w] = merger
		splitterOf[w] = splitter
	}
	for t := range catalog {
		sortedTypes = append(sortedTypes, t)
	}
	sort.Slice(sortedTypes, func(i, j int) bool { return sortedTypes[i] < sortedTypes[j] })
}

// Name returns the display name of t.
//
func Name(t Type) (string, error) {
	e, ok := catalog[t]
	if !ok {
		return "", errors.Wrapf(ErrUnknownType, "type %d", uint16(t))
	}
	return e.name, nil
}

func (t Type) String() string {
	if e, ok := catalog[t]; ok {
		return e.name
	}
	return "chip.Type(" + strconv.Itoa(int(t)) + ")"
}

// Types returns every cataloged type in ascending identifier order. The
// returned slice is a copy and may be modified freely.
//
func Types() []Type {
	ts := make([]Type, len(sortedTypes))
	copy(ts, sortedTypes)
	return ts
}

// IsBusOrigin reports whether t drives a named bus.
//
func IsBusOrigin(t Type) bool { return catalog[t].flags&fOrigin != 0 }

// IsBusTerminus reports whether t consumes a named bus.
//
func IsBusTerminus(t Type) bool { return catalog[t].flags&fTerminus != 0 }

// IsBus reports whether t is a bus origin or terminus.
//
func IsBus(t Type) bool { return catalog[t].flags&(fOrigin|fTerminus) != 0 }

// IsRom reports whether t is a read-only memory.
//
func IsRom(t Type) bool { return catalog[t].flags&fRom != 0 }

// IsMerger reports whether t combines narrower bus values into a wider one.
//
func IsMerger(t Type) bool { return catalog[t].flags&fMerger != 0 }

// IsSplitter reports whether t decomposes a wider bus value into narrower ones.
//
func IsSplitter(t Type) bool { return catalog[t].flags&fSplitter != 0 }

// CorrespondingTerminus returns the bus terminus type consuming the named
// bus driven by origin. It is a bijection over bus origin types and fails on
// any other type.
//
func CorrespondingTerminus(origin Type) (Type, error) {
	e, ok := catalog[origin]
	if !ok || e.flags&fOrigin == 0 {
		return 0, errors.Wrapf(ErrUnsupportedType, "%v is not a bus origin", origin)
	}
	return e.pair, nil
}

// PinType returns the input or output pin type of the given width.
//
func PinType(isInput bool, w hwstate.Width) (Type, error) {
	pins := outputPins
	if isInput {
		pins = inputPins
	}
	t, ok := pins[w]
	if !ok {
		return 0, errors.Wrapf(hwstate.ErrUnsupportedWidth, "no pin of %d lines", w)
	}
	return t, nil
}

// A PinClass describes a pin type: its direction and bus width. The zero
// PinClass marks a non-pin type.
//
type PinClass struct {
	Input  bool
	Output bool
	Width  hwstate.Width
}

// ClassifyPin returns the direction and width of a pin type. It is total
// over all types, cataloged or not: callers probe arbitrary chip types, so a
// non-pin type yields the zero PinClass rather than an error.
//
func ClassifyPin(t Type) PinClass {
	e := catalog[t]
	if e.flags&(fInput|fOutput) == 0 {
		return PinClass{}
	}
	return PinClass{
		Input:  e.flags&fInput != 0,
		Output: e.flags&fOutput != 0,
		Width:  e.width,
	}
}

// An AdapterSpec describes the width pair a merger or splitter implements:
// Fanout operands of Narrow lines on one side, Wide lines on the other.
//
type AdapterSpec struct {
	Narrow hwstate.Width
	Wide   hwstate.Width
	Fanout int
}

// Adapter returns the width pair implemented by a merger or splitter type,
// telling the engine which packing operation the chip performs.
//
func Adapter(t Type) (AdapterSpec, error) {
	e, ok := catalog[t]
	if !ok || e.flags&(fMerger|fSplitter) == 0 {
		return AdapterSpec{}, errors.Wrapf(ErrUnsupportedType, "%v is not a width adapter", t)
	}
	return AdapterSpec{Narrow: e.narrow, Wide: e.width, Fanout: e.fanout}, nil
}

// MergerType returns the merger producing a bus of the given width. There is
// none for the narrowest supported width.
//
func MergerType(wide hwstate.Width) (Type, error) {
	t, ok := mergerOf[wide]
	if !ok {
		return 0, errors.Wrapf(hwstate.ErrUnsupportedWidth, "no merger produces %d lines", wide)
	}
	return t, nil
}

// SplitterType returns the splitter consuming a bus of the given width.
//
func SplitterType(wide hwstate.Width) (Type, error) {
	t, ok := splitterOf[wide]
	if !ok {
		return 0, errors.Wrapf(hwstate.ErrUnsupportedWidth, "no splitter consumes %d lines", wide)
	}
	return t, nil
}
