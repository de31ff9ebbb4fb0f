package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Ragnaroek/iron-wolf-sub000/internal/threading/core"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/threading/rendering"
)

// =============================================================================
// PERFORMANCE MONITOR TESTS
// =============================================================================

func TestNewPerformanceMonitor(t *testing.T) {
	pm := NewPerformanceMonitor()

	if pm == nil {
		t.Fatal("NewPerformanceMonitor returned nil")
	}
	if !pm.enableDetailed {
		t.Error("Expected enableDetailed to be true")
	}
	if time.Since(pm.startTime) > time.Second {
		t.Error("Start time should be recent")
	}
}

func TestPerformanceMonitorFrameTiming(t *testing.T) {
	pm := NewPerformanceMonitor()

	frameTimer := pm.StartFrame()
	time.Sleep(10 * time.Millisecond)
	frameTimer.EndFrame()

	if pm.frameCount.Load() != 1 {
		t.Errorf("Expected frame count to be 1, got %d", pm.frameCount.Load())
	}

	frameTime := pm.frameTime.Load()
	minExpectedTime := uint64(10 * time.Millisecond)
	if frameTime < minExpectedTime {
		t.Errorf("Expected frame time to be at least %d ns, got %d ns", minExpectedTime, frameTime)
	}
	if pm.avgFrameTime != float64(frameTime) {
		t.Errorf("Expected average of one frame to equal it, got %f vs %d", pm.avgFrameTime, frameTime)
	}
}

func TestPerformanceMonitorRaycastTiming(t *testing.T) {
	pm := NewPerformanceMonitor()

	for i := 0; i < 3; i++ {
		rt := pm.StartRaycast()
		rt.EndRaycast(320)
	}
	pm.AddTics(5)
	pm.AddTics(2)

	m := pm.GetCurrentMetrics()
	if m.ColumnsCast != 960 {
		t.Errorf("Expected 960 columns, got %d", m.ColumnsCast)
	}
	if m.Tics != 7 {
		t.Errorf("Expected 7 tics, got %d", m.Tics)
	}
	if pm.viewsCast.Load() != 3 {
		t.Errorf("Expected 3 views, got %d", pm.viewsCast.Load())
	}

	stats := pm.GetDetailedStats()
	if stats["columns_cast"].(uint64) != 960 {
		t.Errorf("Expected columns_cast 960, got %v", stats["columns_cast"])
	}
}

func TestPerformanceMonitorAlerts(t *testing.T) {
	pm := NewPerformanceMonitor()
	if alerts := pm.CheckPerformanceAlerts(); len(alerts) != 0 {
		t.Fatalf("Expected no alerts on a fresh monitor, got %+v", alerts)
	}

	pm.frameTime.Store(uint64(50 * time.Millisecond))
	pm.raycastTime.Store(uint64(20 * time.Millisecond))

	alerts := pm.CheckPerformanceAlerts()
	if len(alerts) != 2 {
		t.Fatalf("Expected 2 alerts, got %+v", alerts)
	}
	if alerts[0].Type != "low_fps" || alerts[1].Type != "slow_cast" {
		t.Errorf("Unexpected alert types %s, %s", alerts[0].Type, alerts[1].Type)
	}
}

func TestPerformanceMonitorReset(t *testing.T) {
	pm := NewPerformanceMonitor()
	pm.StartFrame().EndFrame()
	pm.StartRaycast().EndRaycast(10)
	pm.AddTics(3)

	pm.Reset()
	m := pm.GetCurrentMetrics()
	if m.ColumnsCast != 0 || m.Tics != 0 || pm.frameCount.Load() != 0 {
		t.Errorf("Expected counters cleared, got %+v", m)
	}
}

func TestPerformanceMonitorConcurrency(t *testing.T) {
	pm := NewPerformanceMonitor()
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				frameTimer := pm.StartFrame()
				pm.StartRaycast().EndRaycast(16)
				pm.AddTics(1)
				frameTimer.EndFrame()
			}
		}()
	}
	wg.Wait()

	if pm.frameCount.Load() != 100 {
		t.Errorf("Expected 100 frames, got %d", pm.frameCount.Load())
	}
	if pm.columnsCast.Load() != 1600 {
		t.Errorf("Expected 1600 columns, got %d", pm.columnsCast.Load())
	}
}

// =============================================================================
// WORKER POOL TESTS
// =============================================================================

func TestWorkerPoolCreation(t *testing.T) {
	wp := core.NewWorkerPool(0)
	if wp.GetNumWorkers() != runtime.NumCPU() {
		t.Errorf("Expected %d workers (CPU count), got %d", runtime.NumCPU(), wp.GetNumWorkers())
	}

	wp2 := core.NewWorkerPool(4)
	if wp2.GetNumWorkers() != 4 {
		t.Errorf("Expected 4 workers, got %d", wp2.GetNumWorkers())
	}
}

func TestWorkerPoolJobExecution(t *testing.T) {
	wp := core.NewWorkerPool(2)
	wp.Start()
	defer wp.Stop()

	var counter int32
	for i := 0; i < 10; i++ {
		wp.Submit(func() {
			atomic.AddInt32(&counter, 1)
		})
	}
	wp.Wait()

	if counter != 10 {
		t.Errorf("Expected counter to be 10, got %d", counter)
	}
}

func TestWorkerPoolParallelChunks(t *testing.T) {
	wp := core.NewWorkerPool(4)
	wp.Start()
	defer wp.Stop()

	var covered [100]int32
	var chunks int32
	wp.ParallelChunks(0, 100, 7, func(lo, hi int) {
		atomic.AddInt32(&chunks, 1)
		if hi-lo > 7 {
			t.Errorf("chunk [%d,%d) larger than 7", lo, hi)
		}
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&covered[i], 1)
		}
	})

	if chunks != 15 {
		t.Errorf("Expected 15 chunks, got %d", chunks)
	}
	for i, c := range covered {
		if c != 1 {
			t.Fatalf("index %d covered %d times", i, c)
		}
	}

	// empty range is a no-op
	wp.ParallelChunks(5, 5, 1, func(lo, hi int) { t.Error("called for empty range") })
}

func TestWorkerPoolStopTwice(t *testing.T) {
	wp := core.NewWorkerPool(1)
	wp.Start()
	wp.Stop()
	wp.Stop()
}

// =============================================================================
// PARALLEL COLUMN TESTS
// =============================================================================

func TestParallelColumnsCoverEveryColumn(t *testing.T) {
	pc := rendering.NewParallelColumns(3)
	defer pc.Stop()

	for _, width := range []int{1, 8, 9, 64, 304, 320} {
		out := make([]int32, width)
		pc.Run(width, func(start, end int) {
			for col := start; col < end; col++ {
				atomic.AddInt32(&out[col], int32(col+1))
			}
		})
		for col, v := range out {
			if v != int32(col+1) {
				t.Fatalf("width %d: column %d = %d", width, col, v)
			}
		}
	}
}

func TestParallelColumnsRepeatedFrames(t *testing.T) {
	pc := rendering.NewParallelColumns(0)
	defer pc.Stop()

	var total int64
	for frame := 0; frame < 50; frame++ {
		pc.Run(320, func(start, end int) {
			atomic.AddInt64(&total, int64(end-start))
		})
	}
	if total != 50*320 {
		t.Errorf("Expected %d columns, got %d", 50*320, total)
	}
}
