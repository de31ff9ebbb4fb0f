package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// PerformanceMonitor tracks frame, cast and simulation timing.
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds, last frame

	// Cast metrics
	raycastTime atomic.Uint64 // nanoseconds, last view
	columnsCast atomic.Uint64
	viewsCast   atomic.Uint64

	// Simulation
	tics atomic.Uint64

	// Statistics
	mutex          sync.RWMutex
	avgFrameTime   float64
	avgRaycastTime float64
	startTime      time.Time

	enableDetailed bool
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime:      time.Now(),
		enableDetailed: true,
	}
}

// FrameTimer measures one frame.
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	pm := ft.monitor
	frameTime := uint64(time.Since(ft.startTime).Nanoseconds())
	pm.frameTime.Store(frameTime)
	count := pm.frameCount.Add(1)

	if pm.enableDetailed {
		pm.mutex.Lock()
		pm.avgFrameTime += (float64(frameTime) - pm.avgFrameTime) / float64(count)
		pm.mutex.Unlock()
	}
}

// RaycastTimer measures one view's column loop.
type RaycastTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartRaycast begins raycast timing
func (pm *PerformanceMonitor) StartRaycast() *RaycastTimer {
	return &RaycastTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndRaycast completes raycast timing for a view of columns columns.
func (rt *RaycastTimer) EndRaycast(columns int) {
	pm := rt.monitor
	raycastTime := uint64(time.Since(rt.startTime).Nanoseconds())
	pm.raycastTime.Store(raycastTime)
	pm.columnsCast.Add(uint64(columns))
	views := pm.viewsCast.Add(1)

	if pm.enableDetailed {
		pm.mutex.Lock()
		pm.avgRaycastTime += (float64(raycastTime) - pm.avgRaycastTime) / float64(views)
		pm.mutex.Unlock()
	}
}

// AddTics records simulated tics.
func (pm *PerformanceMonitor) AddTics(tics int) {
	pm.tics.Add(uint64(tics))
}

// Metrics is a snapshot for the debug overlay.
type Metrics struct {
	FramesPerSecond float64
	LastFrameTime   time.Duration
	LastRaycastTime time.Duration
	AvgRaycastTime  time.Duration
	ColumnsCast     uint64
	Tics            uint64
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() Metrics {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	frameTime := pm.frameTime.Load()
	fps := 0.0
	if frameTime > 0 {
		fps = float64(time.Second) / float64(frameTime)
	}

	return Metrics{
		FramesPerSecond: fps,
		LastFrameTime:   time.Duration(frameTime),
		LastRaycastTime: time.Duration(pm.raycastTime.Load()),
		AvgRaycastTime:  time.Duration(pm.avgRaycastTime),
		ColumnsCast:     pm.columnsCast.Load(),
		Tics:            pm.tics.Load(),
	}
}

// GetDetailedStats returns detailed performance statistics
func (pm *PerformanceMonitor) GetDetailedStats() map[string]interface{} {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	fps := 0.0
	if ft := pm.frameTime.Load(); ft > 0 {
		fps = float64(time.Second) / float64(ft)
	}

	return map[string]interface{}{
		"uptime_seconds":      time.Since(pm.startTime).Seconds(),
		"frame_count":         pm.frameCount.Load(),
		"avg_frame_time_ms":   pm.avgFrameTime / 1e6,
		"avg_raycast_time_ms": pm.avgRaycastTime / 1e6,
		"current_fps":         fps,
		"views_cast":          pm.viewsCast.Load(),
		"columns_cast":        pm.columnsCast.Load(),
		"tics":                pm.tics.Load(),
		"memory_alloc_mb":     memStats.Alloc / 1024 / 1024,
		"gc_cycles":           memStats.NumGC,
		"cpu_cores":           runtime.NumCPU(),
		"goroutines":          runtime.NumGoroutine(),
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// castBudget is the share of a 70Hz tic the column loop may take before it
// is reported.
const castBudget = time.Second / 70 / 2

// CheckPerformanceAlerts reports a low frame rate or a slow column loop.
func (pm *PerformanceMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	var alerts []PerformanceAlert
	now := time.Now()

	if frameTime := pm.frameTime.Load(); frameTime > 0 {
		fps := float64(time.Second) / float64(frameTime)
		if fps < 30 {
			alerts = append(alerts, PerformanceAlert{
				Type:      "low_fps",
				Message:   "Frame rate is below 30 FPS",
				Value:     fps,
				Threshold: 30,
				Timestamp: now,
			})
		}
	}

	if rt := time.Duration(pm.raycastTime.Load()); rt > castBudget {
		alerts = append(alerts, PerformanceAlert{
			Type:      "slow_cast",
			Message:   "Column loop exceeded half a tic",
			Value:     float64(rt) / 1e6,
			Threshold: float64(castBudget) / 1e6,
			Timestamp: now,
		})
	}
	return alerts
}

// EnableDetailedLogging toggles the running averages.
func (pm *PerformanceMonitor) EnableDetailedLogging(enabled bool) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.enableDetailed = enabled
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.raycastTime.Store(0)
	pm.columnsCast.Store(0)
	pm.viewsCast.Store(0)
	pm.tics.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.avgRaycastTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
