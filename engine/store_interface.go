package engine

import "github.com/lixenwraith/vi-crawler/core"

// AnyStore provides type-erased operations for lifecycle management
// World destroys entities across every store without knowing concrete types
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}
