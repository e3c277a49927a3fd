package sqldataset

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/stretchr/testify/require"
)

type numberedDialect struct{}

func (numberedDialect) Placeholder(i int) string {
	return fmt.Sprintf(":%d", i)
}

func TestStatements(t *testing.T) {
	stmt, err := SelectStatement("weather", []string{"id", "outlook", "play"})
	require.NoError(t, err)
	require.Equal(t, `SELECT "id", "outlook", "play" FROM "weather"`, stmt)

	stmt, err = CreateTableStatement("weather", []string{"id", "play"})
	require.NoError(t, err)
	require.Equal(t, `CREATE TABLE IF NOT EXISTS "weather"("id" TEXT NULL, "play" TEXT NULL)`, stmt)

	stmt, err = InsertStatement(numberedDialect{}, "weather", []string{"id", "play"}, 2)
	require.NoError(t, err)
	require.Equal(t, `INSERT INTO "weather" ("id", "play") VALUES (:0, :1), (:2, :3)`, stmt)

	_, err = SelectStatement(`we"ather`, []string{"id"})
	require.Error(t, err)
	_, err = CreateTableStatement("weather", []string{""})
	require.Error(t, err)
}

// tableAdapter is an Adapter over an in-memory table
type tableAdapter struct {
	columns    []string
	rows       [][]string
	statements int
}

func (ta *tableAdapter) Columns(ctx context.Context, table string) ([]string, error) {
	return ta.columns, nil
}

func (ta *tableAdapter) IterateOnRows(ctx context.Context, table string, columns []string, lambda func(int, []string) (bool, error)) error {
	for i, r := range ta.rows {
		ok, err := lambda(i, append([]string{}, r...))
		if err != nil || !ok {
			return err
		}
	}
	return nil
}

func (ta *tableAdapter) CreateTable(ctx context.Context, table string, columns []string) error {
	ta.columns = columns
	return nil
}

func (ta *tableAdapter) AddRows(ctx context.Context, table string, columns []string, rows [][]string) (int, error) {
	ta.statements++
	ta.rows = append(ta.rows, rows...)
	return len(rows), nil
}

func (ta *tableAdapter) Close() error {
	return nil
}

func TestOpenAndWrite(t *testing.T) {
	ta := &tableAdapter{
		columns: []string{"id", "outlook", "play"},
		rows:    [][]string{{"1", " sunny ", "no"}, {"2", "rain", "yes"}},
	}
	s, err := Open(context.Background(), ta, "weather")
	require.NoError(t, err)
	require.Equal(t, dataset.Row{"id", "outlook", "play"}, s.Header())
	require.Equal(t, []dataset.Row{{"1", "sunny", "no"}, {"2", "rain", "yes"}}, s.Rows())

	out := &tableAdapter{}
	require.NoError(t, Write(context.Background(), out, "weather", s))
	require.Equal(t, []string{"id", "outlook", "play"}, out.columns)
	require.Equal(t, [][]string{{"1", "sunny", "no"}, {"2", "rain", "yes"}}, out.rows)

	ta.rows = append(ta.rows, []string{"3", "rain"})
	ta.columns = []string{"play"}
	_, err = Open(context.Background(), ta, "weather")
	require.True(t, errors.Is(err, dataset.ErrMalformedDataset))
}
