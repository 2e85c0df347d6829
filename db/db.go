// Package db carries the SQL schema for the netflix_shows table.
package db

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrations embed.FS

// UpMigrations returns the contents of every *.up.sql file in lexical order.
func UpMigrations() ([]string, error) {
	names, err := fs.Glob(migrations, "migrations/*_*.up.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	scripts := make([]string, 0, len(names))
	for _, name := range names {
		payload, err := fs.ReadFile(migrations, name)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, string(payload))
	}
	return scripts, nil
}
