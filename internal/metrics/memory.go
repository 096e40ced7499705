package metrics

import "runtime"

// MemorySnapshot is a point-in-time heap reading, logged after expensive
// constructions when verbose output is enabled.
type MemorySnapshot struct {
	HeapAlloc   uint64 // live bytes on the heap
	Sys         uint64 // total bytes obtained from the OS
	NumGC       uint32 // completed GC cycles
	HeapObjects uint64 // live heap objects
}

// ReadMemory captures the current runtime memory statistics.
func ReadMemory() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		Sys:         m.Sys,
		NumGC:       m.NumGC,
		HeapObjects: m.HeapObjects,
	}
}
