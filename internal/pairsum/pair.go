package pairsum

import "fmt"

// Pair is two values drawn from the input whose sum matched the target.
type Pair struct {
	A int
	B int
}

// Sum returns A + B.
func (p Pair) Sum() int {
	return p.A + p.B
}

// Product returns A * B.
func (p Pair) Product() int {
	return p.A * p.B
}

// String renders the pair as "A, B".
func (p Pair) String() string {
	return fmt.Sprintf("%d, %d", p.A, p.B)
}
