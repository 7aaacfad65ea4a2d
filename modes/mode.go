// Package modes implements the per-mode camera behaviors (first-person,
// third-person, free) and the registry that holds them. Registration is
// strict: a malformed mode fails fast rather than silently degrading
// the pipeline.
package modes

import (
	"fmt"
	"strings"

	"github.com/pthm-cable/camcore/camctx"
	"github.com/pthm-cable/camcore/camerror"
)

// Mode is a single camera behavior. Update must be pure with respect to
// orchestrator-owned state: it reads ctx's inputs and writes only
// ctx.OutPos/ctx.Target.
type Mode interface {
	ID() string
	Meta() camctx.ModeMeta
	Update(ctx *camctx.Ctx)
}

// Registry holds the set of modes registered for one orchestrator: an
// ordered slice for deterministic cycling plus an id-keyed map for
// lookup.
type Registry struct {
	order []Mode
	byID  map[string]Mode
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Mode)}
}

// Register adds m, failing fast on any contract violation: nil mode,
// empty id, non-lowercase id, duplicate id, or NumRays outside [0,16].
func (r *Registry) Register(m Mode) error {
	if m == nil {
		return camerror.ContractViolation("cannot register nil mode")
	}
	id := m.ID()
	if id == "" {
		return camerror.ContractViolation("mode id must not be empty")
	}
	if id != strings.ToLower(id) {
		return camerror.ContractViolation(fmt.Sprintf("mode id %q must be lowercase", id))
	}
	if _, exists := r.byID[id]; exists {
		return camerror.ContractViolation(fmt.Sprintf("duplicate mode id %q", id))
	}
	meta := m.Meta()
	if meta.NumRays < 0 || meta.NumRays > 16 {
		return camerror.ContractViolation(fmt.Sprintf("mode %q numRays out of range [0,16]: %d", id, meta.NumRays))
	}

	r.order = append(r.order, m)
	r.byID[id] = m
	return nil
}

// Get looks up a mode by id.
func (r *Registry) Get(id string) (Mode, bool) {
	m, ok := r.byID[id]
	return m, ok
}

// Len returns the number of registered modes.
func (r *Registry) Len() int { return len(r.order) }

// At returns the mode at registration-order index i.
func (r *Registry) At(i int) Mode { return r.order[i] }

// IndexOf returns the registration-order index of id, or -1.
func (r *Registry) IndexOf(id string) int {
	for i, m := range r.order {
		if m.ID() == id {
			return i
		}
	}
	return -1
}

// Next returns the mode that follows id in registration order,
// wrapping around. Cycling is deterministic.
func (r *Registry) Next(id string) (Mode, error) {
	if len(r.order) == 0 {
		return nil, camerror.ContractViolation("registry is empty")
	}
	i := r.IndexOf(id)
	if i < 0 {
		return nil, camerror.ContractViolation(fmt.Sprintf("unknown mode id %q", id))
	}
	return r.order[(i+1)%len(r.order)], nil
}
