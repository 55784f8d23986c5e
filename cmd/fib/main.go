// File: cmd/fib/main.go
// Author: momentics <momentics@gmail.com>
//
// Grounded on original_source/test/fib.cpp: naive recursive fibonacci with
// distinct per-branch complexity functions (cost(n-1) != cost(n-2)), one
// call site holder shared across every recursive invocation.

package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/momentics/granularity-go/granularity"
)

var phi = (1 + math.Sqrt(5)) / 2

// comp approximates the work of fib(n) as phi^n, the same estimate
// fib.cpp's comp() uses.
func comp(n int) granularity.Complexity {
	return granularity.Complexity(math.Pow(phi, float64(n)))
}

func fibSeq(n int) int64 {
	if n == 0 || n == 1 {
		return int64(n)
	}
	return fibSeq(n-1) + fibSeq(n-2)
}

func fibPar(h *granularity.Holder, n int) int64 {
	if n == 0 || n == 1 {
		return int64(n)
	}
	var a, b int64
	granularity.Fork2(func() {
		granularity.CstmtSeq(h, func() granularity.Complexity { return comp(n - 1) },
			func() { a = fibPar(h, n-1) },
			func() { a = fibSeq(n - 1) },
		)
	}, func() {
		granularity.CstmtSeq(h, func() granularity.Complexity { return comp(n - 2) },
			func() { b = fibPar(h, n-2) },
			func() { b = fibSeq(n - 2) },
		)
	})
	return a + b
}

func main() {
	n := flag.Int("n", 30, "fibonacci index to compute")
	kappa := flag.Float64("kappa", 300, "sequential/parallel threshold in microseconds")
	workers := flag.Int("workers", 0, "executor worker count (0 = runtime.NumCPU())")
	flag.Parse()

	ctl := granularity.NewController(
		granularity.WithKappa(granularity.Cost(*kappa)),
		granularity.WithExecutorWorkers(*workers),
	)
	defer func() {
		if err := ctl.Shutdown(); err != nil {
			log.Printf("[fib] shutdown: %v", err)
		}
	}()

	h := granularity.NewHolder("fib", 0)

	start := time.Now()
	var ans int64
	granularity.CstmtSeq(h, func() granularity.Complexity { return comp(*n) },
		func() { ans = fibPar(h, *n) },
		func() { ans = fibSeq(*n) },
	)
	elapsed := time.Since(start)

	fmt.Printf("fib(%d) = %d\n", *n, ans)
	fmt.Printf("exectime %.3fs\n", elapsed.Seconds())
}
