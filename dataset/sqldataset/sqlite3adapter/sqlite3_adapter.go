/*
Package sqlite3adapter provides an implementation of the Adapter interface
in the sqldataset package that works over an SQLite3 database.
*/
package sqlite3adapter

import (
	"database/sql"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pbanos/id3/dataset/sqldataset"
)

// Dialect is the sqldataset.Dialect for SQLite3
type Dialect struct{}

// Placeholder returns ? for every argument
func (Dialect) Placeholder(int) string {
	return "?"
}

/*
New takes a path to an SQLite3 database file and a maximum number of open
connections (0 for no limit) and returns an Adapter that works on the file's
database or an error if it fails to open as an sqlite3 database.
*/
func New(path string, maxConns int) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxConns)
	return sqldataset.NewAdapter(db, Dialect{}), nil
}
