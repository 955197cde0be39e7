package raycast

import "sync/atomic"

// EngineRef publishes the current Engine to concurrent readers. Readers Load
// once per frame; a single writer Stores a replacement between frames.
type EngineRef struct {
	p atomic.Pointer[Engine]
}

// NewEngineRef returns a reference holding e.
func NewEngineRef(e *Engine) *EngineRef {
	r := &EngineRef{}
	r.p.Store(e)
	return r
}

// Load returns the current engine, or nil if none was stored.
func (r *EngineRef) Load() *Engine { return r.p.Load() }

// Store replaces the current engine.
func (r *EngineRef) Store(e *Engine) { r.p.Store(e) }
