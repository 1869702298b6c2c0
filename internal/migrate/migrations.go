// Package migrate installs the snapshot schema. The generator recreates its
// database file before every run, so there is no upgrade path to walk: the
// embedded schema files are applied in order inside one transaction onto an
// empty store, then stamped. The stamp makes a repeated call on an already
// prepared database a no-op instead of a CREATE TABLE failure.
package migrate

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed sql/*.sql
var schemaFS embed.FS

type schemaFile struct {
	Version int
	Name    string
	SQL     string
}

func loadSchema() ([]schemaFile, error) {
	entries, err := fs.ReadDir(schemaFS, "sql")
	if err != nil {
		return nil, err
	}
	var files []schemaFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := schemaFS.ReadFile("sql/" + e.Name())
		if err != nil {
			return nil, err
		}
		var v int
		if _, err := fmt.Sscanf(e.Name(), "%d_", &v); err != nil {
			return nil, fmt.Errorf("invalid schema filename %s: %w", e.Name(), err)
		}
		files = append(files, schemaFile{Version: v, Name: e.Name(), SQL: string(data)})
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no embedded schema files")
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Version < files[j].Version })
	return files, nil
}

// Migrate installs the full schema on a fresh database and stamps it with the
// highest schema file version. A database that already carries the stamp is
// left untouched.
func Migrate(db *sql.DB) error {
	files, err := loadSchema()
	if err != nil {
		return err
	}

	installed, err := stamped(db)
	if err != nil {
		return err
	}
	if installed {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, f := range files {
		if _, err := tx.Exec(f.SQL); err != nil {
			return fmt.Errorf("apply schema %s: %w", f.Name, err)
		}
	}
	if _, err := tx.Exec(`CREATE TABLE schema_version(version INTEGER NOT NULL);`); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}
	latest := files[len(files)-1].Version
	if _, err := tx.Exec(`INSERT INTO schema_version(version) VALUES (?)`, latest); err != nil {
		return fmt.Errorf("stamp schema_version: %w", err)
	}
	return tx.Commit()
}

func stamped(db *sql.DB) (bool, error) {
	var n int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'schema_version'`,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("inspect schema: %w", err)
	}
	return n > 0, nil
}
