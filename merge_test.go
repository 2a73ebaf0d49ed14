package parsort

import (
	"math/rand"
	"sort"

	"github.com/pingcap/check"
)

var _ = check.Suite(&mergeSuite{})

type mergeSuite struct{}

func (s *mergeSuite) TestMergeAdjacentRanges(c *check.C) {
	src := []int64{1, 3, 5, 2, 4, 6}
	dst := make([]int64, len(src))
	mergeInto(dst, src, span{0, 3}, span{3, 6}, cmpInt64)
	c.Assert(dst, check.DeepEquals, []int64{1, 2, 3, 4, 5, 6})
}

func (s *mergeSuite) TestMergeLeavesRestOfDestAlone(c *check.C) {
	src := []int64{9, 9, 3, 7, 1, 5, 9, 9}
	dst := []int64{-1, -1, -1, -1, -1, -1, -1, -1}
	mergeInto(dst, src, span{2, 4}, span{4, 6}, cmpInt64)
	c.Assert(dst, check.DeepEquals, []int64{-1, -1, 1, 3, 5, 7, -1, -1})
}

func (s *mergeSuite) TestMergeExhaustedSides(c *check.C) {
	// Left drains first, rest of right is a straight copy.
	src := []int64{1, 2, 8, 9}
	dst := make([]int64, 4)
	mergeInto(dst, src, span{0, 2}, span{2, 4}, cmpInt64)
	c.Assert(dst, check.DeepEquals, []int64{1, 2, 8, 9})

	// Right drains first.
	src = []int64{8, 9, 1, 2}
	mergeInto(dst, src, span{0, 2}, span{2, 4}, cmpInt64)
	c.Assert(dst, check.DeepEquals, []int64{1, 2, 8, 9})

	// Empty right range degenerates into a copy.
	src = []int64{4, 5, 6}
	dst = make([]int64, 3)
	mergeInto(dst, src, span{0, 3}, span{3, 3}, cmpInt64)
	c.Assert(dst, check.DeepEquals, []int64{4, 5, 6})
}

func (s *mergeSuite) TestMergeTiesTakeLeftFirst(c *check.C) {
	type pair struct {
		key, seq int
	}
	src := []pair{{1, 0}, {2, 1}, {1, 2}, {2, 3}}
	dst := make([]pair, 4)
	mergeInto(dst, src, span{0, 2}, span{2, 4}, func(a, b pair) int {
		return a.key - b.key
	})
	c.Assert(dst, check.DeepEquals, []pair{{1, 0}, {1, 2}, {2, 1}, {2, 3}})
}

func (s *mergeSuite) TestSortSpanSortsOnlyItsRange(c *check.C) {
	data := []int64{9, 8, 5, 3, 4, 1, 2, 0}
	scratch := make([]int64, len(data))
	sortSpan(data, scratch, span{2, 6}, cmpInt64)
	c.Assert(data, check.DeepEquals, []int64{9, 8, 1, 3, 4, 5, 2, 0})
}

func (s *mergeSuite) TestSortSpanMatchesStdlib(c *check.C) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{0, 1, 2, 3, 15, 16, 17, 100, 1000, 1 << 12} {
		data := make([]int64, n)
		for i := range data {
			data[i] = rng.Int63n(1000)
		}
		expect := make([]int64, n)
		copy(expect, data)
		sort.Slice(expect, func(i, j int) bool { return expect[i] < expect[j] })

		scratch := make([]int64, n)
		sortSpan(data, scratch, span{0, n}, cmpInt64)
		c.Assert(data, check.DeepEquals, expect)
	}
}

func (s *mergeSuite) TestSortSpanStable(c *check.C) {
	type pair struct {
		key, seq int
	}
	rng := rand.New(rand.NewSource(11))
	data := make([]pair, 500)
	for i := range data {
		data[i] = pair{key: rng.Intn(10), seq: i}
	}
	scratch := make([]pair, len(data))
	sortSpan(data, scratch, span{0, len(data)}, func(a, b pair) int {
		return a.key - b.key
	})
	for i := 1; i < len(data); i++ {
		c.Assert(data[i-1].key <= data[i].key, check.Equals, true)
		if data[i-1].key == data[i].key {
			c.Assert(data[i-1].seq < data[i].seq, check.Equals, true)
		}
	}
}
