package sqldataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
)

/*
Open takes a context, an Adapter and a table name and returns a dataset with
the contents of the table, with its columns as header and its rows as data
rows, values trimmed of surrounding whitespace.
*/
func Open(ctx context.Context, a Adapter, table string) (*dataset.Dataset, error) {
	columns, err := a.Columns(ctx, table)
	if err != nil {
		return nil, err
	}
	var rows []dataset.Row
	err = a.IterateOnRows(ctx, table, columns, func(_ int, values []string) (bool, error) {
		for i, v := range values {
			values[i] = strings.TrimSpace(v)
		}
		rows = append(rows, dataset.Row(values))
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	s, err := dataset.New(dataset.Row(columns), rows)
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %w", table, err)
	}
	return s, nil
}

/*
Write takes a context, an Adapter, a table name and a dataset and ensures the
table exists with the columns of the dataset before inserting its rows.
*/
func Write(ctx context.Context, a Adapter, table string, s *dataset.Dataset) error {
	columns := []string(s.Header())
	err := a.CreateTable(ctx, table, columns)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, s.Count())
	for _, r := range s.Rows() {
		rows = append(rows, []string(r))
	}
	_, err = a.AddRows(ctx, table, columns, rows)
	return err
}
