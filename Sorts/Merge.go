package Sorts

import "golang.org/x/exp/constraints"

// MergeSort sorts s ascending in place. Top-down and recursive: s is split in
// the middle until runs have one element, then adjacent runs are merged.
// Equal elements keep their relative order.
// Time: O(n log n); Space: O(n) for one scratch slice shared by all merges.
func MergeSort[T constraints.Ordered](s []T) {
	MergeSortFunc(s, func(a, b T) bool {
		return a < b
	})
}

// MergeSortFunc is MergeSort ordered by less. It is stable.
func MergeSortFunc[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	decompose(s, make([]T, len(s)), less)
}

// decompose sorts s using buf, len(buf)==len(s), as scratch.
func decompose[T any](s, buf []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	mid := len(s) >> 1
	decompose(s[:mid], buf[:mid], less)
	decompose(s[mid:], buf[mid:], less)
	merge(s, mid, buf, less)
}

// merge the sorted runs s[:mid] and s[mid:]. Ties take from the left run.
func merge[T any](s []T, mid int, buf []T, less func(a, b T) bool) {
	i, j, t := 0, mid, 0
	for ; i < mid && j < len(s); t++ {
		if less(s[j], s[i]) {
			buf[t] = s[j]
			j++
		} else {
			buf[t] = s[i]
			i++
		}
	}
	t += copy(buf[t:], s[i:mid])
	t += copy(buf[t:], s[j:])
	copy(s, buf[:t])
}
