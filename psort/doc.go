// Package psort implements a partial selection sort: order only the k
// smallest elements of a slice and leave the rest alone.
//
// 🚀 Why not a full sort?
//
//	k-nearest-neighbor needs the k closest training points of n candidates,
//	and k is typically ≪ n. Repeated selection costs O(k·n) — cheaper than
//	the O(n·log n) of a full sort whenever k is small — and stops the moment
//	the k-th smallest element is in place.
//
// Contract:
//
//	After Partial(s, k) / PartialFunc(s, k, cmp):
//	  • s[:k] holds the k smallest elements, in ascending order
//	  • s[k:] holds the remaining elements, in unspecified order
//	  • the multiset of elements in s is unchanged
//	k <= 0 is a no-op; k >= len(s) sorts the whole slice.
//
// The comparison must be a strict total order. For float64 keys pass
// cmp.Compare, which orders NaN below -Inf instead of leaving it unordered.
//
// Complexity: O(k·n) comparisons and swaps, O(1) extra space.
package psort
