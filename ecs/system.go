package ecs

// System is a unit of behavior run once per scheduler pass. Query and
// Singleton fields on a system struct are wired by Scheduler.Register;
// any other fields are private state that survives between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is handed to every system during one scheduler pass.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
		Storage:   storage,
	}
}
