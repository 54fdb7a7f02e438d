package store

import (
	"sort"
	"sync"
	"time"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	// Per-type metrics
	actionMetrics map[string]*ActionMetrics

	// Global counters
	totalDispatches uint64
	totalCancelled  uint64
	totalPanics     uint64

	// Timing
	totalDuration time.Duration
}

// ActionMetrics holds metrics for a specific action type.
type ActionMetrics struct {
	Type           string
	DispatchCount  uint64
	CancelledCount uint64
	PanicCount     uint64
	TotalDuration  time.Duration
	MinDuration    time.Duration
	MaxDuration    time.Duration
	LastDispatch   time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actionMetrics: make(map[string]*ActionMetrics),
	}
}

// RecordDispatch records a dispatch.
func (m *Metrics) RecordDispatch(actionType string, duration time.Duration, cancelled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration
	if cancelled {
		m.totalCancelled++
	}

	am := m.entry(actionType, duration)
	am.DispatchCount++
	am.TotalDuration += duration
	am.LastDispatch = time.Now()

	if duration < am.MinDuration {
		am.MinDuration = duration
	}
	if duration > am.MaxDuration {
		am.MaxDuration = duration
	}
	if cancelled {
		am.CancelledCount++
	}
}

// RecordPanic records a recovered reducer panic.
func (m *Metrics) RecordPanic(actionType string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalPanics++
	m.entry(actionType, 0).PanicCount++
}

// entry returns the metrics for actionType, creating them if needed.
// Callers hold m.mu.
func (m *Metrics) entry(actionType string, duration time.Duration) *ActionMetrics {
	am := m.actionMetrics[actionType]
	if am == nil {
		am = &ActionMetrics{
			Type:        actionType,
			MinDuration: duration,
			MaxDuration: duration,
		}
		m.actionMetrics[actionType] = am
	}
	return am
}

// TotalDispatches returns the total number of dispatches.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalCancelled returns the number of dispatches cancelled by hooks.
func (m *Metrics) TotalCancelled() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalCancelled
}

// TotalPanics returns the total number of panics recovered.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}

// AverageDuration returns the average dispatch duration.
func (m *Metrics) AverageDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.averageLocked()
}

func (m *Metrics) averageLocked() time.Duration {
	if m.totalDispatches == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalDispatches)
}

// ActionStats returns a copy of the metrics for an action type, or nil.
func (m *Metrics) ActionStats(actionType string) *ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	am := m.actionMetrics[actionType]
	if am == nil {
		return nil
	}

	c := *am
	return &c
}

// TopActions returns the n most dispatched action types.
// A negative n is treated as zero.
func (m *Metrics) TopActions(n int) []*ActionMetrics {
	actions := m.all()
	sort.Slice(actions, func(i, j int) bool {
		if actions[i].DispatchCount != actions[j].DispatchCount {
			return actions[i].DispatchCount > actions[j].DispatchCount
		}
		return actions[i].Type < actions[j].Type
	})

	n = max(0, min(n, len(actions)))
	return actions[:n]
}

// all returns copies of the per-type metrics in no particular order.
func (m *Metrics) all() []*ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	actions := make([]*ActionMetrics, 0, len(m.actionMetrics))
	for _, am := range m.actionMetrics {
		c := *am
		actions = append(actions, &c)
	}
	return actions
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actionMetrics = make(map[string]*ActionMetrics)
	m.totalDispatches = 0
	m.totalCancelled = 0
	m.totalPanics = 0
	m.totalDuration = 0
}

// MetricsSnapshot is a point-in-time copy of the global counters.
type MetricsSnapshot struct {
	TotalDispatches uint64
	TotalCancelled  uint64
	TotalPanics     uint64
	TotalDuration   time.Duration
	AverageDuration time.Duration
	ActionCount     int
	Timestamp       time.Time
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := MetricsSnapshot{
		TotalDispatches: m.totalDispatches,
		TotalCancelled:  m.totalCancelled,
		TotalPanics:     m.totalPanics,
		TotalDuration:   m.totalDuration,
		AverageDuration: m.averageLocked(),
		ActionCount:     len(m.actionMetrics),
		Timestamp:       time.Now(),
	}
	return snapshot
}

// AverageActionDuration returns the average duration for the action type.
func (am *ActionMetrics) AverageActionDuration() time.Duration {
	if am.DispatchCount == 0 {
		return 0
	}
	return am.TotalDuration / time.Duration(am.DispatchCount)
}
