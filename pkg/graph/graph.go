// Package graph holds the in-memory entity/grouping store that backs the
// connection search. Entities are the nodes of the implicit graph; groupings
// are the shared contexts (for the film dataset: movies) that link them.
package graph

import "errors"

var (
	// ErrEntityNotFound is returned when an entity id or name is unknown.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrGroupingNotFound is returned when a grouping id is unknown.
	ErrGroupingNotFound = errors.New("grouping not found")
	// ErrDuplicateID is returned when a record with an existing id is added.
	ErrDuplicateID = errors.New("duplicate id")
)

// Entity is a person/node in the connection graph. Display names need not
// be unique; ambiguity is surfaced through LookupEntitiesByName rather than
// resolved silently.
type Entity struct {
	ID    string
	Name  string
	Birth string

	groupings map[string]struct{}
}

// Grouping is a shared context (a movie) linking its member entities.
type Grouping struct {
	ID    string
	Label string
	Year  string

	members map[string]struct{}
}

// Hop is one step of a connection chain: the grouping used and the entity
// reached through it.
type Hop struct {
	GroupingID string `json:"grouping_id" yaml:"grouping_id"`
	EntityID   string `json:"entity_id" yaml:"entity_id"`
}
