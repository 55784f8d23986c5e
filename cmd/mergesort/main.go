// File: cmd/mergesort/main.go
// Author: momentics <momentics@gmail.com>
//
// Grounded on original_source/test/utils/mergesort.hpp, driving
// parallel.MergeSort over a random slice of int64s and reporting whether
// the controller-guided sort actually produced sorted output.

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/momentics/granularity-go/granularity"
	"github.com/momentics/granularity-go/parallel"
)

func main() {
	n := flag.Int("n", 1_000_000, "number of elements to sort")
	kappa := flag.Float64("kappa", 300, "sequential/parallel threshold in microseconds")
	write := flag.String("write-constants", "", "path to write the learned constants sidecar to")
	read := flag.String("read-constants", "", "path to read a constants sidecar from at startup")
	flag.Parse()

	opts := []granularity.Option{granularity.WithKappa(granularity.Cost(*kappa))}
	if *write != "" {
		opts = append(opts, granularity.WithWriteConstants(*write))
	}
	if *read != "" {
		opts = append(opts, granularity.WithReadConstants(*read))
	}
	ctl := granularity.NewController(opts...)
	defer func() {
		if err := ctl.Shutdown(); err != nil {
			log.Printf("[mergesort] shutdown: %v", err)
		}
	}()

	r := rand.New(rand.NewSource(1))
	items := make([]int64, *n)
	for i := range items {
		items[i] = r.Int63n(int64(*n) * 10)
	}

	start := time.Now()
	sorted := parallel.MergeSort(items, func(a, b int64) bool { return a < b })
	elapsed := time.Since(start)

	fmt.Println("sorted:", sort.SliceIsSorted(sorted, func(i, j int) bool { return sorted[i] < sorted[j] }))
	fmt.Printf("exectime %.3fs\n", elapsed.Seconds())
}
