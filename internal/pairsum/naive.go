package pairsum

// Naive compares every ordered index pair (i, j) with i != j and returns each
// match in row-major order. A matching pair {a, b} therefore appears twice,
// once as (a, b) and once as (b, a).
func Naive(values []int, target int) []Pair {
	var result []Pair
	for i := range values {
		for j := range values {
			if i == j {
				continue
			}
			if values[i]+values[j] == target {
				result = append(result, Pair{A: values[i], B: values[j]})
			}
		}
	}
	return result
}
