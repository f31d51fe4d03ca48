package psort

import "cmp"

// Partial rearranges s in place so that s[:k] holds the k smallest elements
// in ascending natural order; s[k:] is left in unspecified order.
func Partial[E cmp.Ordered](s []E, k int) {
	PartialFunc(s, k, cmp.Compare[E])
}

// PartialFunc rearranges s in place so that s[:k] holds the k smallest
// elements under compare, in ascending order; s[k:] is left in unspecified
// order. compare must be a strict total order returning <0, 0, >0.
//
// The algorithm is a reverse bubble pass per target position: for each i the
// minimum of s[i:] bubbles down to index i through adjacent swaps, so after
// pass i the prefix s[:i+1] is final.
func PartialFunc[E any](s []E, k int, compare func(a, b E) int) {
	if k > len(s) {
		k = len(s)
	}

	for i := 0; i < k; i++ {
		for j := len(s) - 2; j >= i; j-- {
			if compare(s[j], s[j+1]) > 0 {
				s[j], s[j+1] = s[j+1], s[j]
			}
		}
	}
}
