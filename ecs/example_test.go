package ecs_test

import (
	"fmt"

	"github.com/plus3/conway/ecs"
)

type Transform struct {
	X, Y float32
}

type Speed struct {
	DX, DY float32
}

type FrameCounter struct {
	Frames int
}

type PhysicsSystem struct {
	Entities ecs.Query[struct {
		*Transform
		*Speed
	}]
	Frames ecs.Singleton[FrameCounter]
}

func (s *PhysicsSystem) Execute(frame *ecs.UpdateFrame) {
	s.Frames.Get().Frames++
	for entity := range s.Entities.Iter() {
		entity.Transform.X += entity.Speed.DX * float32(frame.DeltaTime)
		entity.Transform.Y += entity.Speed.DY * float32(frame.DeltaTime)
	}
}

// ExampleScheduler builds a tiny game loop. Query and Singleton fields are
// bound on Register, and each query is refreshed right before its system
// runs.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Speed](registry)
	storage := ecs.NewStorage(registry)
	ecs.NewSingleton[FrameCounter](storage)

	id := storage.Spawn(Transform{}, Speed{DX: 10, DY: 5})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&PhysicsSystem{})

	scheduler.Once(1.0)
	scheduler.Once(0.5)

	var counter *FrameCounter
	storage.ReadSingleton(&counter)
	pos := ecs.ReadComponent[Transform](storage, id)
	fmt.Printf("frames=%d position=(%.0f, %.1f)\n", counter.Frames, pos.X, pos.Y)
	// Output:
	// frames=2 position=(15, 7.5)
}

type Expired struct{}

type ExpirySystem struct {
	Entities ecs.Query[struct {
		ecs.EntityId
		*Expired
	}]
}

func (s *ExpirySystem) Execute(frame *ecs.UpdateFrame) {
	for entity := range s.Entities.Iter() {
		frame.Commands.Delete(entity.EntityId)
	}
}

// ExampleCommands shows deletions queued during a frame being applied
// once every system has run.
func ExampleCommands() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Expired](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Transform{X: 1})
	storage.Spawn(Transform{X: 2}, Expired{})
	storage.Spawn(Transform{X: 3}, Expired{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&ExpirySystem{})
	scheduler.Once(0)

	fmt.Println("entities left:", storage.CollectStats().TotalEntityCount)
	// Output:
	// entities left: 1
}

// ExampleView shows an ad-hoc lookup outside of any system.
func ExampleView() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Speed](registry)
	storage := ecs.NewStorage(registry)

	still := storage.Spawn(Transform{X: 4, Y: 2})

	view := ecs.NewView[struct {
		*Transform
		Speed *Speed `ecs:"optional"`
	}](storage)

	item := view.Get(still)
	fmt.Println(item.Transform.X, item.Transform.Y, item.Speed == nil)
	// Output:
	// 4 2 true
}
