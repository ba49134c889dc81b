package search

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixhops/sixhops/pkg/graph"
)

// buildStore assembles a store from grouping -> members shorthand.
func buildStore(t *testing.T, groupings map[string][]string) *graph.Store {
	t.Helper()

	s := graph.NewStore()
	added := map[string]bool{}
	for groupingID, members := range groupings {
		require.NoError(t, s.AddGrouping(groupingID, "label "+groupingID, "2000"))
		for _, entityID := range members {
			if !added[entityID] {
				require.NoError(t, s.AddEntity(entityID, "name "+entityID, "1970"))
				added[entityID] = true
			}
		}
	}
	for groupingID, members := range groupings {
		for _, entityID := range members {
			require.NoError(t, s.AddMembership(entityID, groupingID))
		}
	}
	return s
}

func TestShortestChainScenario(t *testing.T) {
	t.Parallel()

	// Entities {A,B,C}, groupings {M1:{A,B}, M2:{B,C}}.
	store := buildStore(t, map[string][]string{
		"M1": {"A", "B"},
		"M2": {"B", "C"},
	})
	searcher := NewSearcher(store, Options{}, nil)
	ctx := context.Background()

	chain, err := searcher.ShortestChain(ctx, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []graph.Hop{
		{GroupingID: "M1", EntityID: "B"},
		{GroupingID: "M2", EntityID: "C"},
	}, chain)

	chain, err = searcher.ShortestChain(ctx, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []graph.Hop{{GroupingID: "M1", EntityID: "B"}}, chain)

	_, err = searcher.ShortestChain(ctx, "A", "D")
	assert.ErrorIs(t, err, graph.ErrEntityNotFound)
	_, err = searcher.ShortestChain(ctx, "D", "A")
	assert.ErrorIs(t, err, graph.ErrEntityNotFound)
}

func TestShortestChainSameEntity(t *testing.T) {
	t.Parallel()

	store := buildStore(t, map[string][]string{"M1": {"A", "B"}})
	searcher := NewSearcher(store, Options{}, nil)

	for _, id := range []string{"A", "B"} {
		chain, err := searcher.ShortestChain(context.Background(), id, id)
		require.NoError(t, err)
		require.NotNil(t, chain)
		assert.Len(t, chain, 0)
	}
}

func TestShortestChainDisconnected(t *testing.T) {
	t.Parallel()

	store := buildStore(t, map[string][]string{
		"M1": {"A", "B"},
		"M2": {"C", "D"},
	})
	searcher := NewSearcher(store, Options{}, nil)

	_, err := searcher.ShortestChain(context.Background(), "A", "C")
	assert.ErrorIs(t, err, ErrNoConnection)
}

func TestShortestChainLinkage(t *testing.T) {
	t.Parallel()

	store := buildStore(t, map[string][]string{
		"M1": {"A", "B", "C"},
		"M2": {"C", "D"},
		"M3": {"D", "E"},
		"M4": {"A", "E"},
	})
	searcher := NewSearcher(store, Options{}, nil)

	chain, err := searcher.ShortestChain(context.Background(), "B", "E")
	require.NoError(t, err)

	// Every consecutive pair of entities must actually share the hop's
	// grouping.
	prev := "B"
	for _, hop := range chain {
		members, err := store.EntitiesOf(hop.GroupingID)
		require.NoError(t, err)
		assert.Contains(t, members, prev, "grouping %s must contain %s", hop.GroupingID, prev)
		assert.Contains(t, members, hop.EntityID)
		prev = hop.EntityID
	}
	assert.Equal(t, "E", prev)
}

func TestShortestChainDeterminism(t *testing.T) {
	t.Parallel()

	store := buildStore(t, map[string][]string{
		"M1": {"A", "B"},
		"M2": {"A", "C"},
		"M3": {"B", "D"},
		"M4": {"C", "D"},
	})
	searcher := NewSearcher(store, Options{}, nil)

	first, err := searcher.ShortestChain(context.Background(), "A", "D")
	require.NoError(t, err)
	require.Len(t, first, 2)

	for i := 0; i < 20; i++ {
		again, err := searcher.ShortestChain(context.Background(), "A", "D")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestShortestChainMinimality cross-checks BFS results against exhaustive
// path enumeration on small random graphs.
func TestShortestChainMinimality(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 25; trial++ {
		entityCount := 4 + rng.Intn(5)
		groupingCount := 3 + rng.Intn(4)

		groupings := make(map[string][]string, groupingCount)
		for g := 0; g < groupingCount; g++ {
			size := 2 + rng.Intn(3)
			seen := map[string]bool{}
			var members []string
			for len(members) < size {
				id := fmt.Sprintf("e%d", rng.Intn(entityCount))
				if !seen[id] {
					seen[id] = true
					members = append(members, id)
				}
			}
			groupings[fmt.Sprintf("g%d", g)] = members
		}
		// Make sure every entity exists even if no grouping picked it.
		groupings["g-pad"] = allEntities(entityCount)[:1]

		store := graph.NewStore()
		for i := 0; i < entityCount; i++ {
			require.NoError(t, store.AddEntity(fmt.Sprintf("e%d", i), "e", ""))
		}
		for groupingID, members := range groupings {
			require.NoError(t, store.AddGrouping(groupingID, "g", ""))
			for _, entityID := range members {
				require.NoError(t, store.AddMembership(entityID, groupingID))
			}
		}

		searcher := NewSearcher(store, Options{}, nil)
		for s := 0; s < entityCount; s++ {
			for d := 0; d < entityCount; d++ {
				sourceID := fmt.Sprintf("e%d", s)
				targetID := fmt.Sprintf("e%d", d)

				want := exhaustiveShortest(t, store, sourceID, targetID)
				chain, err := searcher.ShortestChain(context.Background(), sourceID, targetID)
				if want < 0 {
					assert.ErrorIs(t, err, ErrNoConnection,
						"%s -> %s should be disconnected", sourceID, targetID)
					continue
				}
				require.NoError(t, err, "%s -> %s", sourceID, targetID)
				assert.Len(t, chain, want, "%s -> %s", sourceID, targetID)
			}
		}
	}
}

func allEntities(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("e%d", i)
	}
	return out
}

// exhaustiveShortest finds the minimal hop count independently of the
// searcher by expanding whole levels at a time. Returns -1 when no path
// exists.
func exhaustiveShortest(t *testing.T, store *graph.Store, sourceID, targetID string) int {
	t.Helper()

	if sourceID == targetID {
		return 0
	}
	level := map[string]bool{sourceID: true}
	seen := map[string]bool{sourceID: true}
	for hops := 1; len(level) > 0; hops++ {
		next := map[string]bool{}
		for id := range level {
			neighbors, err := store.NeighborsOf(id)
			require.NoError(t, err)
			for _, hop := range neighbors {
				if hop.EntityID == targetID {
					return hops
				}
				if !seen[hop.EntityID] {
					seen[hop.EntityID] = true
					next[hop.EntityID] = true
				}
			}
		}
		level = next
	}
	return -1
}

func TestShortestChainMaxDepth(t *testing.T) {
	t.Parallel()

	store := buildStore(t, map[string][]string{
		"M1": {"A", "B"},
		"M2": {"B", "C"},
		"M3": {"C", "D"},
	})

	bounded := NewSearcher(store, Options{MaxDepth: 2}, nil)
	_, err := bounded.ShortestChain(context.Background(), "A", "D")
	assert.ErrorIs(t, err, ErrNoConnection)

	chain, err := bounded.ShortestChain(context.Background(), "A", "C")
	require.NoError(t, err)
	assert.Len(t, chain, 2)
}

func TestShortestChainCancelledContext(t *testing.T) {
	t.Parallel()

	store := buildStore(t, map[string][]string{"M1": {"A", "B"}})
	searcher := NewSearcher(store, Options{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := searcher.ShortestChain(ctx, "A", "B")
	assert.ErrorIs(t, err, context.Canceled)
}
