// Package parsort sorts large in-memory sequences with a parallel merge
// sort. The caller fixes two knobs per call: the chunk size (granularity
// of parallel work) and the thread count (size of the worker pool). The
// slice is partitioned into chunks, the chunks are sorted concurrently,
// and the sorted chunks are combined by a binary merge tree whose levels
// run on the same pool, one barrier per level.
package parsort

import "golang.org/x/exp/constraints"

// Config fixes the parallelism of one Sort call. Both fields must be at
// least 1; Sort rejects anything else with ErrInvalidConfig before
// touching the input.
type Config struct {
	// ChunkSize is the maximum number of elements sorted sequentially
	// as one unit of parallel work.
	ChunkSize int
	// Threads is the worker count of the pool serving the call. Values
	// above the hardware's effective parallelism are accepted; they
	// cost scheduling overhead rather than failing.
	Threads int
}

// Validate reports whether the configuration can serve a sort call.
func (c Config) Validate() error {
	if c.ChunkSize < 1 || c.Threads < 1 {
		return ErrInvalidConfig
	}
	return nil
}

// Sort sorts data in place, ascending per cmp. cmp must return a
// negative number when a orders before b, zero when they are equal and
// a positive number otherwise, and must describe a total order.
//
// The pool lives for the duration of the call: it is created after
// validation and closed before return. Merge levels alternate between
// data and an equal-size scratch buffer; whichever buffer the final
// level lands in, the caller's slice holds the sorted result when Sort
// returns, so data is always the authoritative output.
//
// The chunk sorter is stable and merges take the left element on ties,
// which makes this implementation stable in practice; callers should
// treat that as an implementation detail rather than a contract.
func Sort[T any](data []T, cmp func(a, b T) int, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(data) < 2 {
		return nil
	}

	spans := partition(len(data), cfg.ChunkSize)
	scratch := make([]T, len(data))

	pool, err := NewPool(cfg.Threads)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Chunk-sort phase. Each task owns a disjoint span of data and the
	// matching span of scratch, so no locking on the elements is needed.
	handles := make([]*Handle, 0, len(spans))
	for _, s := range spans {
		s := s
		h, err := pool.Submit(func() error {
			sortSpan(data, scratch, s, cmp)
			return nil
		})
		if err != nil {
			return &SortError{Cause: err}
		}
		handles = append(handles, h)
	}
	if err := AwaitAll(handles); err != nil {
		return &SortError{Cause: err}
	}

	// Merge phase: pair adjacent spans level by level, ping-ponging
	// between data and scratch. AwaitAll is the level barrier; a level
	// only reads what the previous level wrote, so no task may start
	// on level k+1 while level k is still running. An odd trailing
	// span is carried to the destination buffer unchanged.
	src, dst := data, scratch
	inScratch := false
	for len(spans) > 1 {
		lvlSrc, lvlDst := src, dst
		next := make([]span, 0, (len(spans)+1)/2)
		handles = handles[:0]
		for i := 0; i+1 < len(spans); i += 2 {
			left, right := spans[i], spans[i+1]
			h, err := pool.Submit(func() error {
				mergeInto(lvlDst, lvlSrc, left, right, cmp)
				return nil
			})
			if err != nil {
				return &SortError{Cause: err}
			}
			handles = append(handles, h)
			next = append(next, span{left.lo, right.hi})
		}
		if len(spans)%2 == 1 {
			last := spans[len(spans)-1]
			h, err := pool.Submit(func() error {
				copy(lvlDst[last.lo:last.hi], lvlSrc[last.lo:last.hi])
				return nil
			})
			if err != nil {
				return &SortError{Cause: err}
			}
			handles = append(handles, h)
			next = append(next, last)
		}
		if err := AwaitAll(handles); err != nil {
			return &SortError{Cause: err}
		}
		spans = next
		src, dst = dst, src
		inScratch = !inScratch
	}

	if inScratch {
		copy(data, scratch)
	}
	return nil
}

// SortOrdered sorts a slice of naturally ordered elements with the
// type's own < relation.
func SortOrdered[T constraints.Ordered](data []T, cfg Config) error {
	return Sort(data, func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}, cfg)
}
