package interfaces

// SchedulerInterface persists a store periodically between Init and Stop.
// Persist also runs once more on shutdown.
type SchedulerInterface interface {
	Init()
	Stop()
	Persist() error
}
