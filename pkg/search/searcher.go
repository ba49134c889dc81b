// Package search implements the breadth-first engine that finds shortest
// connection chains between two entities.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sixhops/sixhops/pkg/frontier"
	"github.com/sixhops/sixhops/pkg/graph"
)

// ErrNoConnection is returned when the search exhausts the graph without
// reaching the target. It is a normal negative result, not a failure;
// callers detect it with errors.Is.
var ErrNoConnection = errors.New("no connection found")

// Graph is the read-only view of the store the searcher needs.
type Graph interface {
	// Entity resolves an id, failing with graph.ErrEntityNotFound when
	// the id is unknown.
	Entity(id string) (*graph.Entity, error)

	// NeighborsOf enumerates (grouping, other entity) pairs in a fixed,
	// deterministic order.
	NeighborsOf(entityID string) ([]graph.Hop, error)
}

// Options tunes a Searcher.
type Options struct {
	// MaxDepth caps the chain length. Zero means unbounded.
	MaxDepth int
}

// Searcher runs breadth-first searches over a read-only graph. A Searcher
// holds no per-query state, so a single instance can serve many queries.
type Searcher struct {
	graph   Graph
	options Options
	logger  *slog.Logger
}

// NewSearcher creates a Searcher over the given graph.
func NewSearcher(g Graph, options Options, logger *slog.Logger) *Searcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Searcher{graph: g, options: options, logger: logger}
}

// ShortestChain finds a minimal-length chain of (grouping, entity) hops
// from sourceID to targetID. Both ids are validated before the search
// begins; unknown ids fail with graph.ErrEntityNotFound. A source equal to
// the target yields an empty chain. When no chain exists (or every chain
// exceeds MaxDepth) the search returns ErrNoConnection.
//
// Because each entity is marked visited when first enqueued, every entity
// is expanded at most once, which gives the standard BFS shortest-path
// guarantee on an unweighted graph. Among equal-length chains the one
// returned follows the graph's neighbor enumeration order.
func (s *Searcher) ShortestChain(ctx context.Context, sourceID, targetID string) ([]graph.Hop, error) {
	if _, err := s.graph.Entity(sourceID); err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	if _, err := s.graph.Entity(targetID); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}

	if sourceID == targetID {
		return []graph.Hop{}, nil
	}

	start := time.Now()
	queue := frontier.NewQueue[string, string]()
	queue.Add(frontier.Root[string, string](sourceID))

	visited := map[string]struct{}{sourceID: {}}
	depth := map[string]int{sourceID: 0}
	expanded := 0

	for !queue.Empty() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		node, err := queue.Remove()
		if err != nil {
			return nil, err
		}
		expanded++

		if s.options.MaxDepth > 0 && depth[node.State] >= s.options.MaxDepth {
			continue
		}

		hops, err := s.graph.NeighborsOf(node.State)
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", node.State, err)
		}

		for _, hop := range hops {
			if _, seen := visited[hop.EntityID]; seen {
				continue
			}
			visited[hop.EntityID] = struct{}{}
			depth[hop.EntityID] = depth[node.State] + 1

			child := node.Child(hop.EntityID, hop.GroupingID)
			if hop.EntityID == targetID {
				chain := reconstruct(child)
				s.logger.Debug("chain found",
					"source", sourceID,
					"target", targetID,
					"degrees", len(chain),
					"expanded", expanded,
					"duration", time.Since(start))
				return chain, nil
			}
			queue.Add(child)
		}
	}

	s.logger.Debug("search exhausted",
		"source", sourceID,
		"target", targetID,
		"expanded", expanded,
		"duration", time.Since(start))
	return nil, ErrNoConnection
}

// reconstruct walks parent links from the goal node back to the root and
// returns the hops in source-to-target order. The root carries no action
// and is skipped.
func reconstruct(goal *frontier.Node[string, string]) []graph.Hop {
	path := goal.Path()
	chain := make([]graph.Hop, 0, len(path)-1)
	for _, node := range path[1:] {
		chain = append(chain, graph.Hop{GroupingID: node.Action, EntityID: node.State})
	}
	return chain
}
