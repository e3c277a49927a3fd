/*
Package pgadapter provides an implementation of the Adapter interface in the
sqldataset package that works over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	"github.com/pbanos/id3/dataset/sqldataset"
)

// Dialect is the sqldataset.Dialect for PostgreSQL
type Dialect struct{}

// Placeholder returns $1, $2... for the 0th, 1st... arguments
func (Dialect) Placeholder(i int) string {
	return fmt.Sprintf("$%d", i+1)
}

/*
New takes a PostgreSQL database connection URL and returns an Adapter that
works on the database or an error if the URL is invalid.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return sqldataset.NewAdapter(db, Dialect{}), nil
}
