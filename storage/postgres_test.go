package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostgresDSN(t *testing.T) {
	for _, tc := range []struct {
		name    string
		dsn     string
		relaxed bool
		exp     string
	}{
		{name: "url gets sslmode", dsn: "postgres://u:p@db.example.com:5432/isc", relaxed: true, exp: "postgres://u:p@db.example.com:5432/isc?sslmode=require"},
		{name: "url keeps sslmode", dsn: "postgresql://u:p@localhost/isc?sslmode=disable", relaxed: true, exp: "postgresql://u:p@localhost/isc?sslmode=disable"},
		{name: "key value gets sslmode", dsn: "host=localhost dbname=isc", relaxed: true, exp: "host=localhost dbname=isc sslmode=require"},
		{name: "key value keeps sslmode", dsn: "host=localhost sslmode=verify-full", relaxed: true, exp: "host=localhost sslmode=verify-full"},
		{name: "strict untouched", dsn: "postgres://u:p@localhost/isc", relaxed: false, exp: "postgres://u:p@localhost/isc"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dsn, err := PostgresDSN(tc.dsn, tc.relaxed)
			require.NoError(t, err)
			require.Equal(t, tc.exp, dsn)
		})
	}

	_, err := PostgresDSN("  ", true)
	require.ErrorIs(t, err, ErrStorage)
}

func TestCompareMigrations(t *testing.T) {
	missing, err := compareMigrations([]string{"a", "b", "c"}, []string{"a"})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, missing)

	missing, err = compareMigrations([]string{"a"}, []string{"a"})
	require.NoError(t, err)
	require.Empty(t, missing)

	_, err = compareMigrations([]string{"a"}, []string{"a", "b"})
	require.Error(t, err)

	_, err = compareMigrations([]string{"a", "x"}, []string{"a", "b"})
	require.Error(t, err)
}

func TestPgMigrationSchema(t *testing.T) {
	require.Contains(t, pgMigration[0], "keywords TEXT[]")
	require.Contains(t, pgMigration[0], "createdAt TIMESTAMP NOT NULL DEFAULT NOW()")
}
