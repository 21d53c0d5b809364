// Copyright 2026 David Cowley
// Licensed under the MIT license. See license text in the LICENSE file.

package hwstate_test

import (
	"fmt"

	"github.com/holiman/uint256"

	hw "github.com/dcowley/hwstate"
	"github.com/dcowley/hwstate/chip"
)

// A simulation engine first asks the chip classifier which width pair an
// adapter implements, then invokes the matching codec operation.
func Example() {
	spec, err := chip.Adapter(chip.Splitter8)
	if err != nil {
		fmt.Println(err)
		return
	}

	bus, err := hw.Driven(uint256.NewInt(0xb4), spec.Wide)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < spec.Fanout; i++ {
		part, err := bus.Split(spec.Narrow, i)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%v[%d] = %v\n", chip.Splitter8, i, part)
	}

	// Output:
	// Split8to4[0] = 0100
	// Split8to4[1] = 1011
}

// Manually driven input pins start out floating and are toggled line by
// line.
func ExampleState_Toggle() {
	pin, err := hw.AllDisconnected(hw.W4)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(pin)
	for _, line := range []int{0, 2} {
		if pin, err = pin.Toggle(line); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println(pin)

	// Output:
	// XXXX
	// X1X1
}
