package game

import (
	"log"
	"time"
)

const perfLogInterval = 3 * time.Second

// maybeLogPerfAlerts logs the monitor's alerts at most once per interval
// while the overlay is up.
func (gl *GameLoop) maybeLogPerfAlerts() {
	g := gl.game
	if !g.showOverlay {
		return
	}
	now := time.Now()
	if !g.perfLastLog.IsZero() && now.Sub(g.perfLastLog) < perfLogInterval {
		return
	}

	alerts := g.threading.PerformanceMonitor.CheckPerformanceAlerts()
	if len(alerts) == 0 {
		return
	}
	g.perfLastLog = now
	for _, a := range alerts {
		log.Printf("[PERF] %s: %s (%.2f, threshold %.2f)", a.Type, a.Message, a.Value, a.Threshold)
	}
	stats := g.threading.GetDetailedPerformanceStats()
	log.Printf("[PERF] frames=%v columns=%v goroutines=%v alloc=%vMB",
		stats["frame_count"], stats["columns_cast"], stats["goroutines"], stats["memory_alloc_mb"])
}
