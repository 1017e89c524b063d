package store

import "github.com/mesh-intelligence/rolodex/pkg/types"

// undoLog is a bounded ring of the most recent reversible actions.
// Pushing past capacity silently discards the oldest entry; that action
// becomes permanently non-undoable.
type undoLog struct {
	entries []types.Action
	depth   int
}

func newUndoLog(depth int) *undoLog {
	return &undoLog{depth: depth}
}

func (l *undoLog) push(a types.Action) {
	if len(l.entries) == l.depth {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, a)
}

// pop removes and returns the most recent action, LIFO.
func (l *undoLog) pop() (types.Action, bool) {
	if len(l.entries) == 0 {
		return nil, false
	}
	a := l.entries[len(l.entries)-1]
	l.entries = l.entries[:len(l.entries)-1]
	return a, true
}

func (l *undoLog) len() int {
	return len(l.entries)
}
