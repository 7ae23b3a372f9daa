package ecs

import (
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type registeredSystem struct {
	system  System
	queries []interface{ Execute() }
	stats   SystemStats
}

// Scheduler runs systems in registration order against one Storage.
type Scheduler struct {
	storage  *Storage
	systems  []*registeredSystem
	commands *Commands
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage:  storage,
		commands: newCommands(),
	}
}

// Register appends a system. Exported Query and Singleton fields of a
// struct system are bound to the scheduler's storage here.
func (s *Scheduler) Register(system System) {
	rs := &registeredSystem{
		system: system,
		stats: SystemStats{
			Name:        systemName(system),
			MinDuration: time.Duration(1<<63 - 1),
		},
	}
	rs.queries = s.bindFields(system)
	s.systems = append(s.systems, rs)
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// bindFields calls Init on every settable field that accepts a storage
// and returns the fields that need a per-frame Execute.
func (s *Scheduler) bindFields(system System) []interface{ Execute() } {
	v := reflect.ValueOf(system)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil
	}
	v = v.Elem()

	var queries []interface{ Execute() }
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		binder, ok := field.Addr().Interface().(interface{ Init(*Storage) })
		if !ok {
			continue
		}
		binder.Init(s.storage)

		if q, ok := binder.(interface{ Execute() }); ok {
			queries = append(queries, q)
		}
	}
	return queries
}

// Once runs every system once with the given delta time, refreshing each
// system's queries right before it executes, then flushes the commands
// the systems queued.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.storage, s.commands)

	for _, rs := range s.systems {
		start := time.Now()
		for _, q := range rs.queries {
			q.Execute()
		}
		rs.system.Execute(frame)
		rs.record(time.Since(start))
	}

	s.commands.Flush(s.storage)
}

func (rs *registeredSystem) record(d time.Duration) {
	st := &rs.stats
	st.ExecutionCount++
	st.LastDuration = d
	st.TotalDuration += d
	st.MinDuration = min(st.MinDuration, d)
	st.MaxDuration = max(st.MaxDuration, d)
	st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
}

// GetStats returns a copy of the per-system execution statistics.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systems)),
	}
	for i, rs := range s.systems {
		stats.Systems[i] = rs.stats
		stats.TotalExecutions += rs.stats.ExecutionCount
	}
	return stats
}
