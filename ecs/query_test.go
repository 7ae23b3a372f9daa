package ecs_test

import (
	"testing"

	"github.com/plus3/conway/ecs"
)

func TestQuery(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})
	storage.Spawn(Position{X: 3, Y: 4}, Velocity{DX: 1.0, DY: 1.0})
	storage.Spawn(Position{X: 5, Y: 6}, Velocity{DX: 1.5, DY: 1.5}, Health{Current: 100, Max: 100})
	storage.Spawn(Position{X: 7, Y: 8})

	query := ecs.NewQuery[struct {
		ecs.EntityId
		*Position
		*Velocity
	}](storage)

	t.Run("execute builds cache", func(t *testing.T) {
		query.Execute()
		if query.Len() != 3 {
			t.Errorf("expected 3 entities, got %d", query.Len())
		}
	})

	t.Run("panics without execute", func(t *testing.T) {
		fresh := ecs.NewQuery[struct{ *Position }](storage)

		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic when calling Iter() before Execute()")
			}
		}()

		for range fresh.Iter() {
		}
	})

	t.Run("snapshot ignores spawns until next execute", func(t *testing.T) {
		query.Execute()
		storage.Spawn(Position{}, Velocity{})

		count := 0
		for range query.Iter() {
			count++
		}
		if count != 3 {
			t.Errorf("expected snapshot of 3, got %d", count)
		}

		query.Execute()
		if query.Len() != 4 {
			t.Errorf("expected 4 after re-execute, got %d", query.Len())
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		query.Execute()
		seen := make(map[ecs.EntityId]bool)
		for item := range query.Iter() {
			if seen[item.EntityId] {
				t.Errorf("duplicate entity %d", item.EntityId)
			}
			seen[item.EntityId] = true
		}
	})
}
