// Package pairsum finds pairs of values that add up to a target sum.
//
// Two solvers are provided and they intentionally disagree on multiplicity.
// Naive checks every ordered index pair, so a matching pair {a, b} is reported
// once per ordering. Indexed makes a single pass and only looks backwards, so
// the same pair is reported once, when its second element is reached.
package pairsum
