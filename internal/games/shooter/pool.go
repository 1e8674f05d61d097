package shooter

// Pool is an insertion-ordered collection of same-kind entities.
//
// Removal is two-phase: scans call MarkRemoved while iterating, and Sweep
// applies every mark in one pass once the frame's scans are done. Marking
// the same entity more than once is a no-op, so iteration never skips or
// repeats a survivor.
type Pool struct {
	items  []Entity
	marked map[EntityID]struct{}
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{marked: make(map[EntityID]struct{})}
}

// Add appends an entity to the end of the pool.
func (p *Pool) Add(e Entity) {
	p.items = append(p.items, e)
}

// Len returns the number of entities in the pool, marked ones included.
func (p *Pool) Len() int {
	return len(p.items)
}

// Items returns a copy of the entities in insertion order.
func (p *Pool) Items() []Entity {
	out := make([]Entity, len(p.items))
	copy(out, p.items)
	return out
}

// Each calls fn with a pointer to every entity in insertion order.
// fn may mark entities for removal but must not add to the pool.
func (p *Pool) Each(fn func(e *Entity)) {
	for i := range p.items {
		fn(&p.items[i])
	}
}

// MarkRemoved records the intent to remove the entity with the given ID.
func (p *Pool) MarkRemoved(id EntityID) {
	p.marked[id] = struct{}{}
}

// Marked reports whether the entity is scheduled for removal.
func (p *Pool) Marked(id EntityID) bool {
	_, ok := p.marked[id]
	return ok
}

// Pending returns how many distinct removals are scheduled.
func (p *Pool) Pending() int {
	return len(p.marked)
}

// Sweep removes every marked entity, keeps survivors in order and clears
// the marks. It returns the number of entities removed.
func (p *Pool) Sweep() int {
	if len(p.marked) == 0 {
		return 0
	}

	kept := p.items[:0]
	for _, e := range p.items {
		if _, gone := p.marked[e.ID]; gone {
			continue
		}
		kept = append(kept, e)
	}
	removed := len(p.items) - len(kept)

	// Zero the tail so dropped entities are not kept alive by the backing array
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = Entity{}
	}
	p.items = kept
	clear(p.marked)

	return removed
}

// Clear empties the pool and drops pending marks.
func (p *Pool) Clear() {
	p.items = p.items[:0]
	clear(p.marked)
}
