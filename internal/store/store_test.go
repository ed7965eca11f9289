package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "spendplan.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, Local, k)

	k, err = ParseKind("session")
	require.NoError(t, err)
	assert.Equal(t, Session, k)

	_, err = ParseKind("cloud")
	assert.Error(t, err)
}

func TestStorage_SetGetUsesPrefix(t *testing.T) {
	local := NewMemory()
	s := New(local, nil)

	require.NoError(t, s.Set("data", record{Name: "rent", Count: 2}, Local))

	raw, found, err := local.Get("@spend-planner:data")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"name":"rent","count":2}`, raw)

	var got record
	found, err = s.Get("data", &got, Local)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, record{Name: "rent", Count: 2}, got)
}

func TestStorage_MissingKeyIsNotAnError(t *testing.T) {
	s := New(NewMemory(), nil)

	var got record
	found, err := s.Get("nothing", &got, Local)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, record{}, got)
}

func TestStorage_EmptyValueIsAbsent(t *testing.T) {
	local := NewMemory()
	require.NoError(t, local.Set(FullKey("data"), ""))
	s := New(local, nil)

	var got record
	found, err := s.Get("data", &got, Local)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestStorage_UnparsableValue(t *testing.T) {
	local := NewMemory()
	require.NoError(t, local.Set(FullKey("data"), "{not json"))
	s := New(local, nil)

	var got record
	found, err := s.Get("data", &got, Local)
	assert.False(t, found)
	assert.ErrorIs(t, err, ErrUnparsable)
}

func TestStorage_LocalAndSessionAreIndependent(t *testing.T) {
	s := New(NewMemory(), NewMemory())

	require.NoError(t, s.Set("data", record{Name: "local"}, Local))
	require.NoError(t, s.Set("data", record{Name: "session"}, Session))

	var got record
	_, err := s.Get("data", &got, Local)
	require.NoError(t, err)
	assert.Equal(t, "local", got.Name)

	_, err = s.Get("data", &got, Session)
	require.NoError(t, err)
	assert.Equal(t, "session", got.Name)
}

func TestStorage_EmptyKindMeansLocal(t *testing.T) {
	local := NewMemory()
	s := New(local, NewMemory())

	require.NoError(t, s.Set("k", 1, ""))
	_, found, err := local.Get(FullKey("k"))
	require.NoError(t, err)
	assert.True(t, found)
}

func TestSQLite_RoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendplan.db")

	db, err := Open(path)
	require.NoError(t, err)
	s := New(db, nil)
	require.NoError(t, s.Set("planners", []record{{Name: "a"}, {Name: "b"}}, Local))
	require.NoError(t, s.Set("planners", []record{{Name: "c"}}, Local))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	var got []record
	found, err := New(db, nil).Get("planners", &got, Local)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []record{{Name: "c"}}, got)

	n, err := db.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSQLite_MissingKey(t *testing.T) {
	db := openTestDB(t)

	_, found, err := db.Get("@spend-planner:data")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Contains(t, db.Path(), "spendplan.db")
}
