package dataset

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDB(t *testing.T, ddl ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	for _, stmt := range ddl {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}

func TestLoadSQLite_SingleTable(t *testing.T) {
	path := writeDB(t,
		`CREATE TABLE purchases (amount REAL, city TEXT)`,
		`INSERT INTO purchases VALUES (12.5, 'Oslo'), (40, 'Bergen'), (NULL, 'Oslo')`,
	)

	tab, err := LoadSQLite(path, "")
	require.NoError(t, err)

	assert.Equal(t, 3, tab.Rows())
	assert.Equal(t, []string{"amount", "city"}, tab.Names())
	assert.Equal(t, KindNumeric, tab.Columns[0].Kind)
	assert.Equal(t, KindCategorical, tab.Columns[1].Kind)
	assert.Equal(t, 1, tab.Columns[0].MissingCount())
	assert.InDelta(t, 12.5, tab.Columns[0].Floats[0], 1e-12)
}

func TestLoadSQLite_NamedTable(t *testing.T) {
	path := writeDB(t,
		`CREATE TABLE a (x INTEGER)`,
		`CREATE TABLE b (y INTEGER)`,
		`INSERT INTO b VALUES (1), (2)`,
	)

	tab, err := LoadSQLite(path, "b")
	require.NoError(t, err)
	assert.Equal(t, 2, tab.Rows())
	assert.Equal(t, []string{"y"}, tab.Names())
}

func TestLoadSQLite_AmbiguousTable(t *testing.T) {
	path := writeDB(t,
		`CREATE TABLE a (x INTEGER)`,
		`CREATE TABLE b (y INTEGER)`,
	)

	_, err := LoadSQLite(path, "")

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, Malformed, le.Kind)
	assert.Contains(t, err.Error(), "--table")
}

func TestLoadSQLite_NotFound(t *testing.T) {
	_, err := LoadSQLite(filepath.Join(t.TempDir(), "nope.db"), "")

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, NotFound, le.Kind)
}
