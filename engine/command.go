package engine

import "github.com/lixenwraith/vi-crawler/core"

// CommandBuffer queues structural changes until the next flush boundary so no system observes a
// half-applied creation or removal from its own sub-phase
type CommandBuffer struct {
	ops []func(w *World)
}

// NewCommandBuffer returns an empty buffer
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{}
}

// Despawn queues destruction; stale handles are ignored at flush
func (cb *CommandBuffer) Despawn(e core.Entity) {
	cb.ops = append(cb.ops, func(w *World) {
		w.DestroyEntity(e)
	})
}

// Do queues an arbitrary world mutation
func (cb *CommandBuffer) Do(fn func(w *World)) {
	cb.ops = append(cb.ops, fn)
}

// AddComponent queues a component write for a live entity
func AddComponent[T any](cb *CommandBuffer, store *Store[T], e core.Entity, val T) {
	cb.Do(func(w *World) {
		if w.Alive(e) {
			store.Set(e, val)
		}
	})
}

// Len returns the number of pending operations
func (cb *CommandBuffer) Len() int {
	return len(cb.ops)
}

// Flush applies pending operations in queue order and returns how many ran
func (cb *CommandBuffer) Flush(w *World) int {
	n := len(cb.ops)
	for i := 0; i < len(cb.ops); i++ {
		cb.ops[i](w)
	}
	cb.ops = cb.ops[:0]
	return n
}
