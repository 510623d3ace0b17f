package storage

import (
	"database/sql"
	"fmt"
)

// migrate executes the queries in wanted that are not yet recorded in the
// migration table. register is the dialect specific insert into that table.
func migrate(db *sql.DB, wanted []string, register string) error {
	query := `CREATE TABLE IF NOT EXISTS migration
("id" INTEGER PRIMARY KEY, "query" TEXT)`
	if _, err := db.Exec(query); err != nil {
		return err
	}

	// find existing
	rows, err := db.Query(`SELECT "query" FROM migration ORDER BY id`)
	if err != nil {
		return err
	}

	existing := []string{}
	for rows.Next() {
		var query string
		if err := rows.Scan(&query); err != nil {
			rows.Close()
			return err
		}
		existing = append(existing, query)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	// compare
	missing, err := compareMigrations(wanted, existing)
	if err != nil {
		return err
	}

	// execute missing
	for i, query := range missing {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration %d: %w", len(existing)+i+1, err)
		}

		// register
		if _, err := db.Exec(register, len(existing)+i+1, query); err != nil {
			return err
		}
	}

	return nil
}

func compareMigrations(wanted, existing []string) ([]string, error) {
	needed := []string{}
	if len(wanted) < len(existing) {
		return []string{}, fmt.Errorf("not enough migrations")
	}

	for i, want := range wanted {
		switch {
		case i >= len(existing):
			needed = append(needed, want)
		case want == existing[i]:
			// do nothing
		case want != existing[i]:
			return []string{}, fmt.Errorf("incompatible migration: %v", want)
		}
	}

	return needed, nil
}
