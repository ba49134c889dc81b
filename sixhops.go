package sixhops

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sixhops/sixhops/pkg/graph"
	"github.com/sixhops/sixhops/pkg/search"
)

var (
	// ErrEntityNotFound is returned when an entity id or name is unknown.
	ErrEntityNotFound = graph.ErrEntityNotFound
	// ErrGroupingNotFound is returned when a grouping id is unknown.
	ErrGroupingNotFound = graph.ErrGroupingNotFound
	// ErrNoConnection is the normal negative result of an exhausted
	// search.
	ErrNoConnection = search.ErrNoConnection
	// ErrAmbiguousName is returned by ResolveUnique when several entities
	// share the requested name.
	ErrAmbiguousName = errors.New("ambiguous name")
)

// Config holds configuration for the Client.
type Config struct {
	// MaxDegrees caps chain length; zero means unbounded.
	MaxDegrees int
}

// Chain is an ordered sequence of hops from a source entity to a target.
// An empty chain means source and target are the same entity.
type Chain struct {
	Hops []graph.Hop
}

// Degrees returns the chain length in hops.
func (c Chain) Degrees() int {
	return len(c.Hops)
}

// Client is the facade over the entity/grouping store and the search
// engine. The store is read-only after construction, so a Client is safe
// for repeated queries.
type Client struct {
	store    *graph.Store
	searcher *search.Searcher
	config   *Config
	logger   *slog.Logger
}

// NewClient creates a client over a populated store.
func NewClient(store *graph.Store, config *Config, logger *slog.Logger) (*Client, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if config == nil {
		config = &Config{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	searcher := search.NewSearcher(store, search.Options{MaxDepth: config.MaxDegrees}, logger)

	return &Client{
		store:    store,
		searcher: searcher,
		config:   config,
		logger:   logger,
	}, nil
}

// Store returns the underlying store.
func (c *Client) Store() *graph.Store {
	return c.store
}

// ResolveName returns every entity whose display name matches, sorted by
// id. More than one result means the name is ambiguous and the caller must
// pick.
func (c *Client) ResolveName(name string) ([]*graph.Entity, error) {
	ids, err := c.store.LookupEntitiesByName(name)
	if err != nil {
		return nil, err
	}
	entities := make([]*graph.Entity, 0, len(ids))
	for _, id := range ids {
		entity, err := c.store.Entity(id)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// ResolveUnique resolves a name that must identify exactly one entity.
// Ambiguity fails with ErrAmbiguousName rather than guessing; callers that
// can interact should use ResolveName and present the candidates.
func (c *Client) ResolveUnique(name string) (*graph.Entity, error) {
	entities, err := c.ResolveName(name)
	if err != nil {
		return nil, err
	}
	if len(entities) > 1 {
		return nil, fmt.Errorf("name %q matches %d people: %w", name, len(entities), ErrAmbiguousName)
	}
	return entities[0], nil
}

// ShortestChain finds a minimal chain of shared groupings from sourceID to
// targetID. Unknown ids fail with ErrEntityNotFound before the search
// starts; an exhausted search returns ErrNoConnection.
func (c *Client) ShortestChain(ctx context.Context, sourceID, targetID string) (Chain, error) {
	hops, err := c.searcher.ShortestChain(ctx, sourceID, targetID)
	if err != nil {
		return Chain{}, err
	}
	return Chain{Hops: hops}, nil
}

// Describe renders a chain as one human-readable line per hop, e.g.
// "1: Kevin Bacon acted with Tom Cruise in A Few Good Men (1992)".
func (c *Client) Describe(sourceID string, chain Chain) ([]string, error) {
	current, err := c.store.Entity(sourceID)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(chain.Hops))
	for i, hop := range chain.Hops {
		grouping, err := c.store.Grouping(hop.GroupingID)
		if err != nil {
			return nil, err
		}
		next, err := c.store.Entity(hop.EntityID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fmt.Sprintf("%d: %s acted with %s in %s (%s)",
			i+1, current.Name, next.Name, grouping.Label, grouping.Year))
		current = next
	}
	return lines, nil
}
