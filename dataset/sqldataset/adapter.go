package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
)

/*
MaxRowInsertionsPerStatement is the maximum number of rows that are added
with a single insert command by AddRows. Adding more results in more
insertion commands.
*/
const MaxRowInsertionsPerStatement = 10

/*
Adapter is an interface providing the methods needed to read and write
datasets on a database backend.
*/
type Adapter interface {
	// Columns takes a table name and returns the names of its columns
	Columns(ctx context.Context, table string) ([]string, error)
	// IterateOnRows takes a table and column names and calls
	// lambda with the index and values of every row of the table
	// until it returns false or an error
	IterateOnRows(ctx context.Context, table string, columns []string, lambda func(int, []string) (bool, error)) error
	// CreateTable takes a table name and column names and ensures
	// the table exists with TEXT columns
	CreateTable(ctx context.Context, table string, columns []string) error
	// AddRows inserts the given rows on the table and returns the
	// number of inserted rows
	AddRows(ctx context.Context, table string, columns []string, rows [][]string) (int, error)
	// Close releases the underlying database handle
	Close() error
}

/*
Dialect describes the differences among databases that an Adapter built
with NewAdapter has to take into account.
*/
type Dialect interface {
	// Placeholder returns the bind parameter for the i-th (0-based)
	// argument of a statement
	Placeholder(i int) string
}

type adapter struct {
	db *sql.DB
	Dialect
}

/*
NewAdapter takes a database handle and a Dialect and returns an Adapter that
works on the database.
*/
func NewAdapter(db *sql.DB, d Dialect) Adapter {
	return &adapter{db, d}
}

/*
QuoteIdentifier takes a table or column name and returns it quoted, or an
error if it contains a double quote.
*/
func QuoteIdentifier(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty identifier")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`identifier '%s' contains invalid character '"'`, name)
	}
	return fmt.Sprintf(`"%s"`, name), nil
}

func quoteIdentifiers(names []string) ([]string, error) {
	result := make([]string, 0, len(names))
	for _, n := range names {
		qn, err := QuoteIdentifier(n)
		if err != nil {
			return nil, err
		}
		result = append(result, qn)
	}
	return result, nil
}

func (a *adapter) Columns(ctx context.Context, table string) ([]string, error) {
	qt, err := QuoteIdentifier(table)
	if err != nil {
		return nil, err
	}
	rows, err := a.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT 0", qt))
	if err != nil {
		return nil, fmt.Errorf("querying columns of %s: %w", table, err)
	}
	defer rows.Close()
	return rows.Columns()
}

func (a *adapter) IterateOnRows(ctx context.Context, table string, columns []string, lambda func(int, []string) (bool, error)) error {
	stmt, err := SelectStatement(table, columns)
	if err != nil {
		return err
	}
	rows, err := a.db.QueryContext(ctx, stmt)
	if err != nil {
		return fmt.Errorf("querying rows of %s: %w", table, err)
	}
	defer rows.Close()
	values := make([]sql.NullString, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	for i := 0; rows.Next(); i++ {
		err = rows.Scan(dest...)
		if err != nil {
			return fmt.Errorf("scanning row %d of %s: %w", i+1, table, err)
		}
		row := make([]string, len(columns))
		for j, v := range values {
			row[j] = v.String
		}
		ok, err := lambda(i, row)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return rows.Err()
}

func (a *adapter) CreateTable(ctx context.Context, table string, columns []string) error {
	stmt, err := CreateTableStatement(table, columns)
	if err != nil {
		return err
	}
	_, err = a.db.ExecContext(ctx, stmt)
	if err != nil {
		return fmt.Errorf("ensuring table %s exists: %w", table, err)
	}
	return nil
}

func (a *adapter) AddRows(ctx context.Context, table string, columns []string, rows [][]string) (int, error) {
	var inserted int
	for chunkStart := 0; chunkStart < len(rows); chunkStart += MaxRowInsertionsPerStatement {
		chunkEnd := chunkStart + MaxRowInsertionsPerStatement
		if chunkEnd > len(rows) {
			chunkEnd = len(rows)
		}
		chunk := rows[chunkStart:chunkEnd]
		stmt, err := InsertStatement(a.Dialect, table, columns, len(chunk))
		if err != nil {
			return inserted, err
		}
		args := make([]interface{}, 0, len(chunk)*len(columns))
		for k, r := range chunk {
			if len(r) != len(columns) {
				return inserted, fmt.Errorf("row %d has %d values for %d columns", chunkStart+k+1, len(r), len(columns))
			}
			for _, v := range r {
				args = append(args, v)
			}
		}
		_, err = a.db.ExecContext(ctx, stmt, args...)
		if err != nil {
			return inserted, fmt.Errorf("inserting rows %d to %d: %w", chunkStart+1, chunkEnd, err)
		}
		inserted += len(chunk)
	}
	return inserted, nil
}

func (a *adapter) Close() error {
	return a.db.Close()
}

// SelectStatement returns the statement to read the given columns of a table
func SelectStatement(table string, columns []string) (string, error) {
	qt, err := QuoteIdentifier(table)
	if err != nil {
		return "", err
	}
	qcs, err := quoteIdentifiers(columns)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(qcs, ", "), qt), nil
}

// CreateTableStatement returns the statement to create a table with the given TEXT columns
func CreateTableStatement(table string, columns []string) (string, error) {
	qt, err := QuoteIdentifier(table)
	if err != nil {
		return "", err
	}
	qcs, err := quoteIdentifiers(columns)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s(", qt))
	for i, c := range qcs {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(fmt.Sprintf("%s TEXT NULL", c))
	}
	buf.WriteString(")")
	return buf.String(), nil
}

/*
InsertStatement returns the statement to insert the given number of rows
on the columns of a table, with the placeholders of the Dialect.
*/
func InsertStatement(d Dialect, table string, columns []string, rows int) (string, error) {
	qt, err := QuoteIdentifier(table)
	if err != nil {
		return "", err
	}
	qcs, err := quoteIdentifiers(columns)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES ", qt, strings.Join(qcs, ", ")))
	var p int
	for i := 0; i < rows; i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(")
		for j := range columns {
			if j > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(d.Placeholder(p))
			p++
		}
		buf.WriteString(")")
	}
	return buf.String(), nil
}
