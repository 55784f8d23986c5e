// File: cmd/nestedloops/main.go
// Author: momentics <momentics@gmail.com>
//
// Grounded on original_source/test/nested_loops.cpp: an outer controlled
// parallel-for of size n, each iteration of which runs an inner
// controlled parallel-for of size m, incrementing a per-worker counter --
// demonstrating that granularity decisions compose across nesting depth.

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/momentics/granularity-go/granularity"
	"github.com/momentics/granularity-go/parallel"
)

func main() {
	n := flag.Int("n", 1000, "outer loop trip count")
	m := flag.Int("m", 1000, "inner loop trip count")
	kappa := flag.Float64("kappa", 300, "sequential/parallel threshold in microseconds")
	flag.Parse()

	ctl := granularity.NewController(granularity.WithKappa(granularity.Cost(*kappa)))
	defer func() {
		if err := ctl.Shutdown(); err != nil {
			log.Printf("[nestedloops] shutdown: %v", err)
		}
	}()

	cnt := granularity.NewPerWorker[int64](0)

	start := time.Now()
	compOuter := func(l, r int) granularity.Complexity { return granularity.Complexity(*m * (r - l)) }
	compInner := func(l, r int) granularity.Complexity { return granularity.Complexity(r - l) }

	parallel.For[int](0, *n, compOuter, func(i int) {
		parallel.For[int](0, *m, compInner, func(j int) {
			*cnt.Mine()++
		}, func(l, r int) {
			*cnt.Mine() += int64(r - l)
		})
	}, func(l, r int) {
		for i := l; i < r; i++ {
			parallel.For[int](0, *m, compInner, func(j int) {
				*cnt.Mine()++
			}, func(ll, rr int) {
				*cnt.Mine() += int64(rr - ll)
			})
		}
	})
	elapsed := time.Since(start)

	total := cnt.Reduce(0, func(a, b int64) int64 { return a + b })
	fmt.Println(total)
	fmt.Printf("exectime %.3fs\n", elapsed.Seconds())
}
