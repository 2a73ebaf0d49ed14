// Command bench measures parsort wall-clock time across a sweep of
// thread counts at a fixed chunk size, then prints a summary table.
// The interesting shape of the curve: throughput improves up to the
// hardware's effective parallelism and goes flat or slightly worse
// beyond it, because extra workers only add scheduling overhead.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cmot17/parsort"
)

func main() {
	var (
		n       = flag.Int("n", 10000000, "number of elements to sort")
		chunk   = flag.Int("chunk", 10000, "chunk size")
		threads = flag.String("threads", "1,2,4,8,16,24,32,48,64,96,100", "comma-separated thread counts to sweep")
		seed    = flag.Int64("seed", 42, "random seed for input generation")
	)
	flag.Parse()

	counts, err := parseCounts(*threads)
	if err != nil {
		log.Fatalf("bad -threads value: %v", err)
	}

	original := make([]int64, *n)
	rng := rand.New(rand.NewSource(*seed))
	for i := range original {
		original[i] = rng.Int63()
	}

	type result struct {
		threads int
		took    time.Duration
	}
	results := make([]result, 0, len(counts))
	data := make([]int64, *n)

	for _, tc := range counts {
		copy(data, original)
		start := time.Now()
		err := parsort.SortOrdered(data, parsort.Config{ChunkSize: *chunk, Threads: tc})
		took := time.Since(start)
		if err != nil {
			log.Fatalf("sort with %d threads: %v", tc, err)
		}
		if err := verifySorted(data); err != nil {
			log.Fatalf("sort with %d threads: %v", tc, err)
		}
		fmt.Printf("sorting %d elements with %d threads took %v\n", *n, tc, took)
		results = append(results, result{threads: tc, took: took})
	}

	fmt.Printf("\n%-15s%s\n", "Num Threads", "Time Taken")
	best := results[0]
	for _, r := range results {
		fmt.Printf("%-15d%v\n", r.threads, r.took)
		if r.took < best.took {
			best = r
		}
	}
	fmt.Printf("\nfastest: %d threads (%v)\n", best.threads, best.took)
}

func parseCounts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	counts := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if v < 1 {
			return nil, fmt.Errorf("thread count %d is below 1", v)
		}
		counts = append(counts, v)
	}
	return counts, nil
}

// verifySorted checks non-decreasing order, splitting the scan across
// the CPUs. Segments overlap by one element so every adjacent pair is
// covered by some segment.
func verifySorted(data []int64) error {
	var g errgroup.Group
	workers := runtime.NumCPU()
	seg := (len(data) + workers - 1) / workers
	if seg < 1 {
		seg = 1
	}
	for lo := 0; lo < len(data); lo += seg {
		lo := lo
		hi := lo + seg + 1
		if hi > len(data) {
			hi = len(data)
		}
		g.Go(func() error {
			for i := lo + 1; i < hi; i++ {
				if data[i-1] > data[i] {
					return fmt.Errorf("result not sorted at index %d", i)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
