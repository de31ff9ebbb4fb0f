package threading

import (
	"github.com/Ragnaroek/iron-wolf-sub000/internal/threading/monitoring"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/threading/rendering"
)

// ThreadingComponents holds the worker-backed pieces the game host owns.
type ThreadingComponents struct {
	Columns            *rendering.ParallelColumns
	PerformanceMonitor *monitoring.PerformanceMonitor
}

// NewThreadingComponents creates the column scheduler (only when parallel
// casting is enabled) and the performance monitor.
func NewThreadingComponents(parallel bool, workers int) *ThreadingComponents {
	tc := &ThreadingComponents{
		PerformanceMonitor: monitoring.NewPerformanceMonitor(),
	}
	if parallel {
		tc.Columns = rendering.NewParallelColumns(workers)
	}
	return tc
}

// Shutdown stops the workers and clears the counters.
func (tc *ThreadingComponents) Shutdown() {
	if tc.Columns != nil {
		tc.Columns.Stop()
	}
	if tc.PerformanceMonitor != nil {
		tc.PerformanceMonitor.Reset()
	}
}

// GetDetailedPerformanceStats returns the monitor's stats map.
func (tc *ThreadingComponents) GetDetailedPerformanceStats() map[string]interface{} {
	if tc.PerformanceMonitor != nil {
		return tc.PerformanceMonitor.GetDetailedStats()
	}
	return nil
}
