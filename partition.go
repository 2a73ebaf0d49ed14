package parsort

// span is a half-open index range [lo, hi) over the sequence being
// sorted, or over its scratch buffer. Spans are views, not copies; two
// tasks may run concurrently only on disjoint spans.
type span struct {
	lo, hi int
}

func (s span) len() int { return s.hi - s.lo }

// partition splits [0, n) into ceil(n/chunkSize) contiguous spans in
// order, with no gaps or overlaps. The last span may be shorter than
// chunkSize. Config validation keeps chunkSize >= 1 before this runs.
func partition(n, chunkSize int) []span {
	if chunkSize < 1 {
		panic("parsort: partition with chunk size < 1")
	}
	if n == 0 {
		return nil
	}
	spans := make([]span, 0, (n+chunkSize-1)/chunkSize)
	for lo := 0; lo < n; lo += chunkSize {
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		spans = append(spans, span{lo, hi})
	}
	return spans
}
