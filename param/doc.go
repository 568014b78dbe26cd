// SPDX-License-Identifier: EPL-2.0

// Package param defines parameter values and the broadcasting rules that
// turn them into per-voice bindings.
//
// A Value is a Scalar, a Sequence or a Ref to a Signal. Resolve computes
// the fan-out of a set of values (the longest length, at least 1) and
// returns one Binding per voice. Voice i binds element i mod len of each
// value, so shorter values repeat.
package param
