package cursor

import "github.com/cribalik/cmantic/internal/position"

// AdvanceOnInsert updates p to account for an insertion that turned the
// empty range at a into the range [a, b). Every position observer of the
// mutated buffer must be passed through this after an insert.
func AdvanceOnInsert(p position.Position, a, b position.Position) position.Position {
	switch {
	case p.Line == a.Line && p.Col >= a.Col:
		p.Line += b.Line - a.Line
		p.Col = b.Col + (p.Col - a.Col)
	case p.Line > a.Line:
		p.Line += b.Line - a.Line
	}
	return p
}

// AdvanceOnDelete updates p to account for the removal of the range [a, b).
// Requires a <= b. Every position observer of the mutated buffer must be
// passed through this after a delete.
func AdvanceOnDelete(p position.Position, a, b position.Position) position.Position {
	switch {
	case !p.Before(a) && !p.After(b):
		return a
	case b.Line > a.Line && p.Line > b.Line:
		p.Line -= b.Line - a.Line
	case p.Line == b.Line && p.Col >= b.Col-1:
		p.Line = a.Line
		p.Col = a.Col + (p.Col - b.Col)
	}
	return p
}

// Observer is anything the edit engine must carry across a mutation: a
// cursor's position, a jumplist entry, or one endpoint of a selection or
// highlight range. The engine's broadcast walks every Observer reachable
// from the pane registry and replaces it with the result of one of these.
type Observer = position.Position

// AdvanceObserverOnInsert is AdvanceOnInsert under the Observer alias, for
// call sites broadcasting to non-cursor observers (jumplist, highlights).
func AdvanceObserverOnInsert(p Observer, a, b position.Position) Observer {
	return AdvanceOnInsert(p, a, b)
}

// AdvanceObserverOnDelete is AdvanceOnDelete under the Observer alias.
func AdvanceObserverOnDelete(p Observer, a, b position.Position) Observer {
	return AdvanceOnDelete(p, a, b)
}
