package arena

// SizeInUse returns the number of bytes carved from the arena since the last
// Reset, including alignment padding.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// Capacity returns the total capacity (in bytes) of all chunks in the arena.
func (a *Arena) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   len(a.chunks),
		ChunkSize:   a.chunkSize,
		Allocations: a.allocations,
		Deallocated: a.deallocated,
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     `json:"size_in_use"` // Bytes carved since the last Reset
	Capacity    int     `json:"capacity"`    // Total capacity in bytes
	NumChunks   int     `json:"num_chunks"`
	ChunkSize   int     `json:"chunk_size"`  // Default chunk size
	Allocations int     `json:"allocations"` // Blocks handed out
	Deallocated int     `json:"deallocated"` // Bytes handed back and awaiting Reset
	Utilization float64 `json:"utilization"` // Ratio of used to total capacity (0.0-1.0)
}
