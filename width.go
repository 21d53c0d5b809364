// Copyright 2026 David Cowley
// Licensed under the MIT license. See license text in the LICENSE file.

package hwstate

import "strconv"

// A Width is the number of parallel lines in a wire or bus. Only the widths
// declared in this package are supported; widths double from 4 up, with a
// single 1 line tier below.
//
type Width uint16

// Supported bus widths.
//
const (
	W1   Width = 1
	W4   Width = 4
	W8   Width = 8
	W16  Width = 16
	W32  Width = 32
	W64  Width = 64
	W128 Width = 128
	W256 Width = 256
)

// widths is the catalog of supported widths, ascending. Read-only after
// package initialization.
var widths = [...]Width{W1, W4, W8, W16, W32, W64, W128, W256}

// Valid reports whether w is one of the supported bus widths.
//
func (w Width) Valid() bool {
	for _, v := range widths {
		if v == w {
			return true
		}
	}
	return false
}

func (w Width) String() string {
	return strconv.Itoa(int(w))
}

// Widths returns the supported bus widths in ascending order. The returned
// slice is a copy and may be modified freely.
//
func Widths() []Width {
	w := make([]Width, len(widths))
	copy(w, widths[:])
	return w
}
