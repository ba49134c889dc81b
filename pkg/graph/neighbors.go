package graph

import (
	"fmt"
	"sort"
)

// NeighborsOf returns every (grouping, other entity) pair reachable from
// the entity through shared grouping membership. The entity itself is never
// in its own neighbor set. The result is sorted by grouping id, then entity
// id; this fixed enumeration order is what makes tie-breaking among
// equal-length chains deterministic.
func (s *Store) NeighborsOf(entityID string) ([]Hop, error) {
	entity, ok := s.entities[entityID]
	if !ok {
		return nil, fmt.Errorf("entity %s: %w", entityID, ErrEntityNotFound)
	}

	var hops []Hop
	for groupingID := range entity.groupings {
		grouping := s.groupings[groupingID]
		for memberID := range grouping.members {
			if memberID == entityID {
				continue
			}
			hops = append(hops, Hop{GroupingID: groupingID, EntityID: memberID})
		}
	}

	sort.Slice(hops, func(i, j int) bool {
		if hops[i].GroupingID != hops[j].GroupingID {
			return hops[i].GroupingID < hops[j].GroupingID
		}
		return hops[i].EntityID < hops[j].EntityID
	})
	return hops, nil
}
