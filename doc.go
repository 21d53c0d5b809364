/*
Package hwstate implements the value layer of a logic circuit simulator: the
tri-state (low, high or disconnected) value of a 1 to 256 line wire or bus at
one simulation instant, and the width-changing operations that merge narrow
bus values into wider ones and split wider values back apart.

A State holds two parallel bit planes of the bus width: a value plane and a
disconnected plane. A line whose disconnected bit is set is floating, and its
value bit is kept at zero so that merging it into a wider bus cannot leak
stale data. All operations are pure functions over value types; a State may be
freely copied and shared.

The State layout is an in-memory representation only. Anything that persists
circuit values must go through Compose and Decompose so that the layout can
change without breaking saved circuits.

Chip type classification, which tells a simulation engine which of these
operations a given chip performs, lives in the chip subpackage.
*/
package hwstate
