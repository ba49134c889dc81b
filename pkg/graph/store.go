package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Store holds the entity and grouping tables together with a lowercase
// name index. It is populated once at load time and treated as read-only
// during search; none of the lookup methods mutate state, so independent
// searches may run against the same store without coordination.
//
// Membership is kept bidirectionally consistent: AddMembership is the only
// way to link an entity and a grouping, and it updates both sides together.
type Store struct {
	entities  map[string]*Entity
	groupings map[string]*Grouping
	names     map[string][]string // lowercase name -> sorted entity ids
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entities:  make(map[string]*Entity),
		groupings: make(map[string]*Grouping),
		names:     make(map[string][]string),
	}
}

// AddEntity registers an entity record. The id must be unique.
func (s *Store) AddEntity(id, name, birth string) error {
	if _, ok := s.entities[id]; ok {
		return fmt.Errorf("entity %s: %w", id, ErrDuplicateID)
	}
	s.entities[id] = &Entity{
		ID:        id,
		Name:      name,
		Birth:     birth,
		groupings: make(map[string]struct{}),
	}
	key := strings.ToLower(name)
	s.names[key] = insertSorted(s.names[key], id)
	return nil
}

// AddGrouping registers a grouping record. The id must be unique.
func (s *Store) AddGrouping(id, label, year string) error {
	if _, ok := s.groupings[id]; ok {
		return fmt.Errorf("grouping %s: %w", id, ErrDuplicateID)
	}
	s.groupings[id] = &Grouping{
		ID:      id,
		Label:   label,
		Year:    year,
		members: make(map[string]struct{}),
	}
	return nil
}

// AddMembership links an entity to a grouping, updating both sides of the
// relation. Linking the same pair twice is a no-op.
func (s *Store) AddMembership(entityID, groupingID string) error {
	entity, ok := s.entities[entityID]
	if !ok {
		return fmt.Errorf("entity %s: %w", entityID, ErrEntityNotFound)
	}
	grouping, ok := s.groupings[groupingID]
	if !ok {
		return fmt.Errorf("grouping %s: %w", groupingID, ErrGroupingNotFound)
	}
	entity.groupings[groupingID] = struct{}{}
	grouping.members[entityID] = struct{}{}
	return nil
}

// Entity returns the entity record for an id.
func (s *Store) Entity(id string) (*Entity, error) {
	entity, ok := s.entities[id]
	if !ok {
		return nil, fmt.Errorf("entity %s: %w", id, ErrEntityNotFound)
	}
	return entity, nil
}

// Grouping returns the grouping record for an id.
func (s *Store) Grouping(id string) (*Grouping, error) {
	grouping, ok := s.groupings[id]
	if !ok {
		return nil, fmt.Errorf("grouping %s: %w", id, ErrGroupingNotFound)
	}
	return grouping, nil
}

// LookupEntitiesByName returns the ids of every entity whose display name
// matches (case-insensitive), sorted ascending. Multiple ids mean the name
// is ambiguous and the caller must disambiguate.
func (s *Store) LookupEntitiesByName(name string) ([]string, error) {
	ids := s.names[strings.ToLower(name)]
	if len(ids) == 0 {
		return nil, fmt.Errorf("name %q: %w", name, ErrEntityNotFound)
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

// GroupingsOf returns the ids of every grouping the entity belongs to,
// sorted ascending.
func (s *Store) GroupingsOf(entityID string) ([]string, error) {
	entity, ok := s.entities[entityID]
	if !ok {
		return nil, fmt.Errorf("entity %s: %w", entityID, ErrEntityNotFound)
	}
	return sortedKeys(entity.groupings), nil
}

// EntitiesOf returns the ids of every member of the grouping, sorted
// ascending.
func (s *Store) EntitiesOf(groupingID string) ([]string, error) {
	grouping, ok := s.groupings[groupingID]
	if !ok {
		return nil, fmt.Errorf("grouping %s: %w", groupingID, ErrGroupingNotFound)
	}
	return sortedKeys(grouping.members), nil
}

// NumEntities returns the number of entity records.
func (s *Store) NumEntities() int {
	return len(s.entities)
}

// NumGroupings returns the number of grouping records.
func (s *Store) NumGroupings() int {
	return len(s.groupings)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// insertSorted inserts id into a sorted slice, keeping it sorted and
// duplicate-free.
func insertSorted(ids []string, id string) []string {
	i := sort.SearchStrings(ids, id)
	if i < len(ids) && ids[i] == id {
		return ids
	}
	ids = append(ids, "")
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}
