package engine

// System is one unit of behaviour run inside a stage
type System interface {
	Name() string
	Priority() int // Lower values run first within a stage
	Update(w *World, res *Resources)
}

// SystemFunc adapts a function to System
type SystemFunc struct {
	SystemName     string
	SystemPriority int
	Fn             func(w *World, res *Resources)
}

func (s SystemFunc) Name() string                    { return s.SystemName }
func (s SystemFunc) Priority() int                   { return s.SystemPriority }
func (s SystemFunc) Update(w *World, res *Resources) { s.Fn(w, res) }
