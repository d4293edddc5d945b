package pairsum

// Indexed walks the values once. For each value it emits (value, complement)
// if the complement was seen at an earlier index, then records the value.
// The lookup is by value only, so duplicates before the current index count
// as a single hit.
func Indexed(values []int, target int) []Pair {
	var result []Pair
	seen := make(map[int]struct{}, len(values))

	for _, v := range values {
		complement := target - v
		if _, ok := seen[complement]; ok {
			result = append(result, Pair{A: v, B: complement})
		}
		seen[v] = struct{}{}
	}

	return result
}
