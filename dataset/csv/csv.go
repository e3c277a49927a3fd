/*
Package csv reads datasets from CSV streams and writes datasets and
classification results as CSV.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree"
)

// DefaultClassificationColumn is the name of the column WriteClassified adds by default
const DefaultClassificationColumn = "classification"

/*
ReadDataset takes an io.Reader for a CSV stream and returns the dataset on it
or an error.

The first row of the CSV content is the header with the names of the columns:
an identifier column, the feature columns and the label column. Every cell is
trimmed of surrounding whitespace. Empty lines are skipped. A row with a number
of cells different from the header's causes an error wrapping
dataset.ErrMalformedDataset.
*/
func ReadDataset(reader io.Reader) (*dataset.Dataset, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reading header: no content: %w", dataset.ErrMalformedDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	header = trim(header)
	var rows []dataset.Row
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %w", err)
		}
		if len(row) != len(header) {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("parsing line %d: has %d cells, header has %d: %w", line, len(row), len(header), dataset.ErrMalformedDataset)
		}
		rows = append(rows, trim(row))
	}
	return dataset.New(header, rows)
}

/*
ReadDatasetFromFilePath takes a filepath string, opens the file to which the
filepath points to and uses ReadDataset to return the dataset on it. If the
filepath is "" the dataset is read from STDIN.
*/
func ReadDatasetFromFilePath(filepath string) (*dataset.Dataset, error) {
	f := os.Stdin
	if filepath != "" {
		var err error
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %w", err)
		}
		defer f.Close()
	}
	s, err := ReadDataset(f)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return s, err
}

/*
WriteDataset takes an io.Writer and a dataset and dumps the dataset onto it
in CSV format, header first.
*/
func WriteDataset(writer io.Writer, s *dataset.Dataset) error {
	w := csv.NewWriter(writer)
	err := w.Write(s.Header())
	if err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, r := range s.Rows() {
		err = w.Write(r)
		if err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}

/*
WriteClassified takes an io.Writer, a dataset, the classification results
for its rows and the name of a column and writes the dataset as CSV with that
column appended, holding the label for resolved rows and an empty cell
for unresolved ones. DefaultClassificationColumn is used if the given name
is empty.
*/
func WriteClassified(writer io.Writer, s *dataset.Dataset, results []tree.Result, column string) error {
	if len(results) != s.Count() {
		return fmt.Errorf("writing classified rows: got %d results for %d rows", len(results), s.Count())
	}
	if column == "" {
		column = DefaultClassificationColumn
	}
	w := csv.NewWriter(writer)
	err := w.Write(append(append(dataset.Row{}, s.Header()...), column))
	if err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, r := range s.Rows() {
		var label string
		if results[i].Resolved {
			label = results[i].Label
		}
		err = w.Write(append(append(dataset.Row{}, r...), label))
		if err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}

func trim(cells []string) dataset.Row {
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}
