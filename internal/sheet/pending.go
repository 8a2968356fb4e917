package sheet

import "sync"

// PendingConflicts holds conflicts deferred under the manual policy. They
// live in memory only, keyed by record ID and field, until a resolution
// decision is supplied or the process exits.
type PendingConflicts struct {
	mu    sync.RWMutex
	items map[string]pendingItem
}

type pendingItem struct {
	kind Kind
	item ConflictItem
}

// NewPendingConflicts creates an empty registry.
func NewPendingConflicts() *PendingConflicts {
	return &PendingConflicts{items: make(map[string]pendingItem)}
}

// Add registers deferred conflicts. A later pass that defers the same
// record/field again overwrites the earlier entry with the fresher values.
func (p *PendingConflicts) Add(kind Kind, conflicts []ConflictItem) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, c := range conflicts {
		p.items[conflictKey(c.RecordID, c.Field)] = pendingItem{kind: kind, item: c}
	}
}

// List returns every pending conflict of a kind.
func (p *PendingConflicts) List(kind Kind) []ConflictItem {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]ConflictItem, 0)
	for _, pi := range p.items {
		if pi.kind == kind {
			out = append(out, pi.item)
		}
	}
	return out
}

// Take removes and returns the pending conflict for a record/field pair.
func (p *PendingConflicts) Take(recordID, field string) (Kind, ConflictItem, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := conflictKey(recordID, field)
	pi, ok := p.items[key]
	if !ok {
		return "", ConflictItem{}, false
	}
	delete(p.items, key)
	return pi.kind, pi.item, true
}
