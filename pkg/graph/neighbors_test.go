package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighborsOf(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	t.Run("union over shared groupings", func(t *testing.T) {
		hops, err := s.NeighborsOf("p2")
		require.NoError(t, err)
		assert.Equal(t, []Hop{
			{GroupingID: "m1", EntityID: "p1"},
			{GroupingID: "m2", EntityID: "p3"},
		}, hops)
	})

	t.Run("excludes the entity itself", func(t *testing.T) {
		hops, err := s.NeighborsOf("p1")
		require.NoError(t, err)
		for _, hop := range hops {
			assert.NotEqual(t, "p1", hop.EntityID)
		}
	})

	t.Run("entity with no groupings", func(t *testing.T) {
		hops, err := s.NeighborsOf("p4")
		require.NoError(t, err)
		assert.Empty(t, hops)
	})

	t.Run("unknown entity", func(t *testing.T) {
		_, err := s.NeighborsOf("missing")
		assert.ErrorIs(t, err, ErrEntityNotFound)
	})

	t.Run("order is deterministic", func(t *testing.T) {
		first, err := s.NeighborsOf("p2")
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := s.NeighborsOf("p2")
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})
}
