// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package main

import (
	"fmt"
	"time"
)

// formatBytes renders a byte count with a binary-prefix unit.
func formatBytes(n int) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.2f GiB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2f KiB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}

// report prints one timed phase with its operation rate.
func report(phase string, ops int, elapsed time.Duration) {
	rate := float64(ops) / elapsed.Seconds()
	fmt.Printf("%-8s %9d ops in %12v (%12.0f ops/sec)\n", phase, ops, elapsed, rate)
}
