// SPDX-License-Identifier: Apache-2.0

package bump

// Used returns the number of region bytes consumed so far, including
// alignment padding. Because the cursor never moves backward this is
// also the high-water mark.
func (a *Allocator) Used() int {
	return int(a.next.Load())
}

// Remaining returns the number of bytes still available before
// exhaustion, ignoring alignment padding future requests may add.
func (a *Allocator) Remaining() int {
	return int(a.size - a.next.Load())
}

// Cap returns the total size of the region in bytes.
func (a *Allocator) Cap() int {
	return int(a.size)
}

// Stats is a point-in-time snapshot of allocator state.
type Stats struct {
	Used        int     // bytes consumed, including alignment padding
	Capacity    int     // total region size in bytes
	Remaining   int     // bytes left before exhaustion
	Allocs      uint64  // successful allocations served
	Failed      uint64  // requests rejected with ErrOutOfMemory
	Utilization float64 // Used / Capacity, 0 for an empty region
}

// Metrics returns a snapshot of allocator statistics. Under concurrent
// allocation the fields are individually accurate but not taken at a
// single instant.
func (a *Allocator) Metrics() Stats {
	used := int(a.next.Load())
	s := Stats{
		Used:      used,
		Capacity:  int(a.size),
		Remaining: int(a.size) - used,
		Allocs:    a.allocs.Load(),
		Failed:    a.failed.Load(),
	}
	if a.size > 0 {
		s.Utilization = float64(used) / float64(a.size)
	}
	return s
}
