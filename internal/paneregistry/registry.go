package paneregistry

import (
	"github.com/google/uuid"

	"github.com/cribalik/cmantic/internal/observer"
	"github.com/cribalik/cmantic/internal/view"
)

// Pane is one registered pane: an id and its View. The buffer it is bound
// to is not stored separately; lookups read it from View.Buf.
type Pane struct {
	ID   string
	View *view.View
}

// Registry is the engine's pane enumeration collaborator. It implements
// observer.Walker by dispatching to every pane whose buffer matches the
// mutated one. Not safe for concurrent use, matching the engine's
// single-threaded, cooperative scheduling model: the caller must ensure no
// pane is added or dropped mid-broadcast.
type Registry struct {
	panes []*Pane
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Add registers a pane under id, returning it for convenience.
func (r *Registry) Add(id string, v *view.View) *Pane {
	p := &Pane{ID: id, View: v}
	r.panes = append(r.panes, p)
	return p
}

// Remove unregisters the pane with the given id, if present.
func (r *Registry) Remove(id string) {
	for i, p := range r.panes {
		if p.ID == id {
			r.panes = append(r.panes[:i], r.panes[i+1:]...)
			return
		}
	}
}

// Panes returns the registered panes bound to bufferID.
func (r *Registry) Panes(bufferID uuid.UUID) []*Pane {
	var out []*Pane
	for _, p := range r.panes {
		if p.View != nil && p.View.Buf != nil && p.View.Buf.ID == bufferID {
			out = append(out, p)
		}
	}
	return out
}

// Walk implements observer.Walker: it applies mutate to every cursor and
// jumplist entry of every pane bound to bufferID.
func (r *Registry) Walk(bufferID uuid.UUID, mutate observer.Mutate) {
	for _, p := range r.panes {
		p.View.WalkObservers(bufferID, mutate)
	}
}
