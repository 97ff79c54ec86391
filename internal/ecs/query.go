package ecs

import "sort"

// QueryBuilder finds entities present in every one of a set of stores.
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []Entity
}

// Query starts a new join over component stores.
//
// Example:
//
//	entities := world.Query().
//	    With(ecs.GetStore[Position](world)).
//	    With(ecs.GetStore[Monster](world)).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{stores: make([]QueryableStore, 0, 4)}
}

// With adds a store to the join. Panics if called after Execute.
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("ecs: query already executed")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns the entities present in all stores, ordered by the
// smallest store's insertion order. Repeated calls return the cached result.
func (qb *QueryBuilder) Execute() []Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]Entity, 0)
		return qb.results
	}

	// Smallest store first minimizes Has checks
	stores := make([]QueryableStore, len(qb.stores))
	copy(stores, qb.stores)
	sort.SliceStable(stores, func(i, j int) bool {
		return stores[i].Count() < stores[j].Count()
	})

	candidates := stores[0].All()
	for _, store := range stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}

// Join2 calls fn for every entity that has both A and B.
func Join2[A, B any](w *World, fn func(e Entity, a *A, b *B)) {
	sa, sb := GetStore[A](w), GetStore[B](w)
	for _, e := range w.Query().With(sa).With(sb).Execute() {
		a, _ := sa.Get(e)
		b, _ := sb.Get(e)
		fn(e, a, b)
	}
}

// Join3 calls fn for every entity that has A, B and C.
func Join3[A, B, C any](w *World, fn func(e Entity, a *A, b *B, c *C)) {
	sa, sb, sc := GetStore[A](w), GetStore[B](w), GetStore[C](w)
	for _, e := range w.Query().With(sa).With(sb).With(sc).Execute() {
		a, _ := sa.Get(e)
		b, _ := sb.Get(e)
		c, _ := sc.Get(e)
		fn(e, a, b, c)
	}
}
