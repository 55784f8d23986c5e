// File: granularity/doc.go
// Author: momentics <momentics@gmail.com>

// Package granularity implements an oracle-guided granularity controller
// for nested fork/join parallelism: each call site learns, online, how
// long its own work costs per unit of caller-supplied complexity, and uses
// that learned constant to decide whether a given invocation is worth
// forking at all.
package granularity
