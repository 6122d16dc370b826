package ecs

import "slices"

// Entity is an opaque handle. Handles come from a monotonically increasing
// counter and are never recycled within one Store, so a stale handle can
// never alias a newer entity.
type Entity uint64

func sortEntities(es []Entity) {
	slices.Sort(es)
}
