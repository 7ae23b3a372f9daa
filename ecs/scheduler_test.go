package ecs_test

import (
	"testing"
	"time"

	"github.com/plus3/conway/ecs"
	"github.com/stretchr/testify/assert"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Iter() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type HealthSystem struct {
	Entities     ecs.Query[struct{ *Health }]
	TotalHealth  float64
	ExecuteCount int
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.TotalHealth = 0
	for item := range s.Entities.Iter() {
		s.TotalHealth += float64(item.Health.Current)
	}
}

type counterSystem struct {
	Counter ecs.Singleton[Score]
}

func (s *counterSystem) Execute(frame *ecs.UpdateFrame) {
	*s.Counter.Get() += 1
}

type sleepSystem struct {
	sleep time.Duration
}

func (s *sleepSystem) Execute(frame *ecs.UpdateFrame) {
	time.Sleep(s.sleep)
}

func TestScheduler(t *testing.T) {
	registry := newTestRegistry()

	t.Run("systems run in order with bound queries", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		health := &HealthSystem{}
		scheduler.Register(movement)
		scheduler.Register(health)

		id := storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 10, DY: 20})
		storage.Spawn(Health{Current: 50, Max: 100})

		scheduler.Once(0.5)
		scheduler.Once(0.5)

		assert.Equal(t, 2, movement.ExecuteCount)
		assert.Equal(t, 2, health.ExecuteCount)
		assert.Equal(t, 50.0, health.TotalHealth)

		pos := ecs.ReadComponent[Position](storage, id)
		assert.Equal(t, float32(10), pos.X)
		assert.Equal(t, float32(20), pos.Y)
	})

	t.Run("queries see entities spawned between frames", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		health := &HealthSystem{}
		scheduler.Register(health)

		storage.Spawn(Health{Current: 50})
		scheduler.Once(1.0)
		assert.Equal(t, 50.0, health.TotalHealth)

		storage.Spawn(Health{Current: 25})
		scheduler.Once(1.0)
		assert.Equal(t, 75.0, health.TotalHealth)
	})

	t.Run("singleton fields are bound", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		ecs.NewSingleton[Score](storage, Score(40))

		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&counterSystem{})
		scheduler.Once(0)
		scheduler.Once(0)

		var score *Score
		storage.ReadSingleton(&score)
		assert.Equal(t, Score(42), *score)
	})

	t.Run("commands are visible next frame", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		scheduler.Register(&testSpawnSystem{})
		movement := &MovementSystem{}
		scheduler.Register(movement)

		scheduler.Once(1.0)
		assert.Equal(t, 0, movement.Entities.Len(), "spawns are deferred to the end of the frame")

		scheduler.Once(1.0)
		assert.Equal(t, 1, movement.Entities.Len())
	})
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	scheduler := ecs.NewScheduler(storage)

	stats := scheduler.GetStats()
	assert.Equal(t, 0, stats.SystemCount)
	assert.Equal(t, int64(0), stats.TotalExecutions)

	scheduler.Register(&sleepSystem{sleep: time.Millisecond})
	scheduler.Register(&sleepSystem{sleep: 2 * time.Millisecond})

	scheduler.Once(0.016)
	scheduler.Once(0.016)
	scheduler.Once(0.016)

	stats = scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)

	for _, s := range stats.Systems {
		assert.Equal(t, "sleepSystem", s.Name)
		assert.Equal(t, int64(3), s.ExecutionCount)
		assert.NotZero(t, s.MinDuration)
		assert.NotZero(t, s.LastDuration)
		assert.LessOrEqual(t, s.MinDuration, s.AvgDuration)
		assert.LessOrEqual(t, s.AvgDuration, s.MaxDuration)
	}
}
