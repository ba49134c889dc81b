package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixhops/sixhops/pkg/graph"
)

func writeDataset(t *testing.T, people, movies, stars string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, PeopleFile), []byte(people), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, MoviesFile), []byte(movies), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, StarsFile), []byte(stars), 0o644))
	return dir
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := writeDataset(t,
		"id,name,birth\n1,Kevin Bacon,1958\n2,Tom Cruise,1962\n",
		"id,title,year\n10,A Few Good Men,1992\n",
		"person_id,movie_id\n1,10\n2,10\n",
	)

	store, err := NewLoader(nil).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, store.NumEntities())
	assert.Equal(t, 1, store.NumGroupings())

	members, err := store.EntitiesOf("10")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, members)

	groupings, err := store.GroupingsOf("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"10"}, groupings)

	entity, err := store.Entity("2")
	require.NoError(t, err)
	assert.Equal(t, "Tom Cruise", entity.Name)
	assert.Equal(t, "1962", entity.Birth)
}

func TestLoadColumnsByName(t *testing.T) {
	t.Parallel()

	// Column order must not matter; only header names do.
	dir := writeDataset(t,
		"birth,id,name\n1958,1,Kevin Bacon\n",
		"year,title,id\n1992,A Few Good Men,10\n",
		"movie_id,person_id\n10,1\n",
	)

	store, err := NewLoader(nil).Load(dir)
	require.NoError(t, err)

	entity, err := store.Entity("1")
	require.NoError(t, err)
	assert.Equal(t, "Kevin Bacon", entity.Name)

	members, err := store.EntitiesOf("10")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, members)
}

func TestLoadSkipsDanglingMemberships(t *testing.T) {
	t.Parallel()

	dir := writeDataset(t,
		"id,name,birth\n1,Kevin Bacon,1958\n",
		"id,title,year\n10,A Few Good Men,1992\n",
		"person_id,movie_id\n1,10\n999,10\n1,999\n",
	)

	store, err := NewLoader(nil).Load(dir)
	require.NoError(t, err)

	members, err := store.EntitiesOf("10")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, members)
}

func TestLoadMissingColumn(t *testing.T) {
	t.Parallel()

	dir := writeDataset(t,
		"id,fullname,birth\n1,Kevin Bacon,1958\n",
		"id,title,year\n",
		"person_id,movie_id\n",
	)

	_, err := NewLoader(nil).Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "name"`)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader(nil).Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDuplicateIDsFailFast(t *testing.T) {
	t.Parallel()

	dir := writeDataset(t,
		"id,name,birth\n1,Kevin Bacon,1958\n1,Other Person,1970\n",
		"id,title,year\n",
		"person_id,movie_id\n",
	)

	_, err := NewLoader(nil).Load(dir)
	assert.ErrorIs(t, err, graph.ErrDuplicateID)
}
