package arrays

// Description:
//
//	Collects the elements accepted by keep.
//
// Parameters:
//
//	items 	The input elements.
//	keep 	Decides whether an element is kept.
//
// Returns:
//
//	The kept elements, in order. Never nil.
func Filter[T any](items []T, keep func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

// Description:
//
//	Searches the first element accepted by match.
//
// Parameters:
//
//	items 	The elements to search.
//	match 	Decides whether an element matches.
//
// Returns:
//
//	The index of the first match, or -1.
func FindIndex[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}
