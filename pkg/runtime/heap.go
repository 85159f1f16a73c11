package runtime

import (
	"fmt"
	"os"
	"sync/atomic"
)

// HeapStats is a snapshot of the allocation counters. The counters only
// grow: this layer hands every buffer to the host collector and never
// reclaims anything itself.
type HeapStats struct {
	Strings       uint64
	StringBytes   uint64
	Arrays        uint64
	ArrayElements uint64
}

var heapCounters struct {
	strings       atomic.Uint64
	stringBytes   atomic.Uint64
	arrays        atomic.Uint64
	arrayElements atomic.Uint64
}

// Stats returns the allocation counters accumulated since process start.
func Stats() HeapStats {
	return HeapStats{
		Strings:       heapCounters.strings.Load(),
		StringBytes:   heapCounters.stringBytes.Load(),
		Arrays:        heapCounters.arrays.Load(),
		ArrayElements: heapCounters.arrayElements.Load(),
	}
}

func noteString(size uint64) {
	heapCounters.strings.Add(1)
	heapCounters.stringBytes.Add(size)
	tracef("++new_string size=%d", size)
}

func noteArray(count uint64) {
	heapCounters.arrays.Add(1)
	heapCounters.arrayElements.Add(count)
	tracef("++new_array len=%d", count)
}

// dumpStats writes one summary line to standard error. Enter registers it as
// a shutdown hook when FALCONRT_STATS is set.
func dumpStats() {
	s := Stats()
	fmt.Fprintf(os.Stderr, "falconrt: strings=%d string_bytes=%d arrays=%d array_elements=%d\n",
		s.Strings, s.StringBytes, s.Arrays, s.ArrayElements)
}
