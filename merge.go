package parsort

// mergeInto merges the adjacent sorted ranges src[left.lo:left.hi] and
// src[right.lo:right.hi] into dst[left.lo:right.hi] with the usual
// two-pointer scan. Equal elements are taken from the left range first,
// so the merge preserves the relative order the chunk sorter produced.
// Once one side is exhausted the remainder is copied in one go.
func mergeInto[T any](dst, src []T, left, right span, cmp func(a, b T) int) {
	i, j, k := left.lo, right.lo, left.lo
	for i < left.hi && j < right.hi {
		if cmp(src[i], src[j]) <= 0 {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:right.hi], src[i:left.hi])
	copy(dst[k:right.hi], src[j:right.hi])
}

// sortSpan sorts data[s.lo:s.hi] in place with a bottom-up merge sort,
// using the matching span of scratch as auxiliary storage. The sort is
// stable. Nothing outside the span is read or written, so concurrent
// sortSpan calls on disjoint spans of the same two buffers are safe.
func sortSpan[T any](data, scratch []T, s span, cmp func(a, b T) int) {
	a := data[s.lo:s.hi]
	b := scratch[s.lo:s.hi]
	n := len(a)

	src, dst := a, b
	flips := 0
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := lo + width
			hi := lo + 2*width
			if mid > n {
				mid = n
			}
			if hi > n {
				hi = n
			}
			mergeInto(dst, src, span{lo, mid}, span{mid, hi}, cmp)
		}
		src, dst = dst, src
		flips++
	}
	if flips%2 == 1 {
		copy(a, b)
	}
}
