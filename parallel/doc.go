// File: parallel/doc.go
// Author: momentics <momentics@gmail.com>
//
// Package parallel provides data-parallel operations built on top of the
// granularity controller: For, BlockedFor, Reduce, Map, Scan, Filter,
// MergeSort, Fill, Copy. None of these carry their own scheduling
// policy -- they all delegate the sequential/parallel decision to
// granularity.Cstmt and the actual fork to granularity.Fork2, and exist
// only to give the controller something realistic to control -- they are
// clients built on top of the controller, not part of it.
//
// Grounded on original_source/include/ploop.hpp (parallel_for,
// blocked_for) and original_source/test/utils/{reduce,map,scan,filter,
// mergesort}.hpp.
package parallel
