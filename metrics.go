package vector

// counters accumulates the element traffic of one vector.
type counters struct {
	reallocations int
	moved         int
	copied        int
	shifted       int
}

func (c *counters) noteTransfer(n int, relocated bool) {
	c.reallocations++
	if relocated {
		c.moved += n
	} else {
		c.copied += n
	}
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Len:           v.size,
		Cap:           v.Cap(),
		Reallocations: v.stats.reallocations,
		Moved:         v.stats.moved,
		Copied:        v.stats.copied,
		Shifted:       v.stats.shifted,
		Utilization:   v.Utilization(),
	}
}

// ResetMetrics zeroes the traffic counters.
func (v *Vector[T]) ResetMetrics() {
	v.stats = counters{}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Len           int     `json:"len"`
	Cap           int     `json:"cap"`
	Reallocations int     `json:"reallocations"` // Blocks replaced by a larger or smaller one
	Moved         int     `json:"moved"`         // Elements relocated into a new block
	Copied        int     `json:"copied"`        // Elements copied into a new block or by Assign
	Shifted       int     `json:"shifted"`       // Elements shifted within a block by Emplace or Erase
	Utilization   float64 `json:"utilization"`   // Ratio of Len to Cap (0.0-1.0)
}
