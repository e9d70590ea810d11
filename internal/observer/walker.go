package observer

import (
	"github.com/google/uuid"

	"github.com/cribalik/cmantic/internal/position"
)

// Mutate is applied to every live position observer of a mutated buffer.
// Implementations of Walker call it once per cursor, jumplist entry, and
// selection anchor, replacing each with the returned position.
type Mutate func(position.Position) position.Position

// Walker enumerates every pane bound to a given buffer and applies mutate to
// each of that pane's position observers. A Registry (see paneregistry) is
// the production implementation; the edit engine depends only on this
// interface so it never needs to know about views or panes directly.
type Walker interface {
	Walk(bufferID uuid.UUID, mutate Mutate)
}

// NopWalker is a Walker with no panes registered, for buffers created
// outside any pane registry (e.g. a transient scratch buffer under test).
type NopWalker struct{}

// Walk does nothing.
func (NopWalker) Walk(uuid.UUID, Mutate) {}
