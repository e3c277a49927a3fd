package dataset

import (
	"context"
	"fmt"
)

/*
Sample represents a row whose values are looked up by column name through
a header, so that the order of the columns does not need to match the one
in which a tree was grown.
*/
type Sample struct {
	header Row
	row    Row
}

// NewSample takes a header and a row and returns a sample for the row
func NewSample(header, row Row) *Sample {
	return &Sample{header, row}
}

/*
ValueFor takes the name of a feature and returns the value of the row on
the first column of the header with that name. ErrMissingColumn is returned
if the header has no column with the name.
*/
func (s *Sample) ValueFor(_ context.Context, feature string) (string, error) {
	i := s.header.Index(feature)
	if i < 0 || i >= len(s.row) {
		return "", fmt.Errorf("%w %q", ErrMissingColumn, feature)
	}
	return s.row[i], nil
}

// Samples returns a sample for every data row of the dataset
func (s *Dataset) Samples() []*Sample {
	result := make([]*Sample, 0, len(s.rows))
	for _, r := range s.rows {
		result = append(result, NewSample(s.header, r))
	}
	return result
}

func (s *Sample) String() string {
	return fmt.Sprintf("%v", s.row)
}
