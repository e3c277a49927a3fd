package dataset

import (
	"fmt"
	"math"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

const (
	// IDColumn is the index of the identifier column, which is
	// never used to compute entropies or to split the dataset.
	IDColumn = 0
	// MinimumColumns is the minimum number of columns a dataset
	// must have: an identifier and a label column.
	MinimumColumns = 2
)

// Row is an ordered sequence of string cells
type Row []string

/*
Dataset represents a table of string cells with a header. The first column
of the table identifies each row and the last one holds the class label for
the row. Columns in between are features.

A Dataset is not modified after being created: subsetting returns a new
Dataset, and its methods may be called from several goroutines.
*/
type Dataset struct {
	header Row
	rows   []Row
}

/*
New takes a header and a slice of rows and returns a Dataset with them or an
error wrapping ErrMalformedDataset if the header has less than MinimumColumns
columns or any row does not have as many columns as the header. The given
slices are used as they are, so they should not be modified afterwards.
*/
func New(header Row, rows []Row) (*Dataset, error) {
	if len(header) < MinimumColumns {
		return nil, fmt.Errorf("header has %d columns, at least %d (identifier and label) are required: %w", len(header), MinimumColumns, ErrMalformedDataset)
	}
	for i, r := range rows {
		if len(r) != len(header) {
			return nil, fmt.Errorf("row %d has %d columns, header has %d: %w", i+1, len(r), len(header), ErrMalformedDataset)
		}
	}
	return &Dataset{header: header, rows: rows}, nil
}

/*
FromTable takes a table whose first row is the header and returns a Dataset
for it like New does. An empty table is malformed.
*/
func FromTable(table [][]string) (*Dataset, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("table has no header: %w", ErrMalformedDataset)
	}
	rows := make([]Row, 0, len(table)-1)
	for _, r := range table[1:] {
		rows = append(rows, Row(r))
	}
	return New(Row(table[0]), rows)
}

// Header returns the names of the columns of the dataset
func (s *Dataset) Header() Row {
	return s.header
}

// Rows returns the data rows of the dataset, without the header
func (s *Dataset) Rows() []Row {
	return s.rows
}

// Count returns the number of data rows in the dataset
func (s *Dataset) Count() int {
	return len(s.rows)
}

// Columns returns the number of columns of the dataset
func (s *Dataset) Columns() int {
	return len(s.header)
}

// LabelColumn returns the index of the label column
func (s *Dataset) LabelColumn() int {
	return len(s.header) - 1
}

// LabelName returns the name of the label column
func (s *Dataset) LabelName() string {
	return s.header[s.LabelColumn()]
}

/*
FeatureColumns returns the indexes of the feature columns, that is,
all columns strictly between the identifier and the label, from left
to right.
*/
func (s *Dataset) FeatureColumns() []int {
	var result []int
	for i := IDColumn + 1; i < s.LabelColumn(); i++ {
		result = append(result, i)
	}
	return result
}

// IsFeatureColumn returns whether the given column index is a feature column
func (s *Dataset) IsFeatureColumn(column int) bool {
	return column > IDColumn && column < s.LabelColumn()
}

/*
ColumnIndex takes a column name and returns the index of the first column
with that name in the header, or -1 if there is none.
*/
func (s *Dataset) ColumnIndex(name string) int {
	return s.header.Index(name)
}

/*
Index takes a column name and returns the index of the first cell in the row
equal to it, or -1 if there is none.
*/
func (r Row) Index(name string) int {
	for i, n := range r {
		if n == name {
			return i
		}
	}
	return -1
}

/*
Entropy returns the empirical entropy in bits of the label column of the
dataset, or ErrEmptyDataset if it has no data rows.
*/
func (s *Dataset) Entropy() (float64, error) {
	if len(s.rows) == 0 {
		return 0.0, ErrEmptyDataset
	}
	var result float64
	count := float64(len(s.rows))
	it := s.labelCounts().Iterator()
	for it.Next() {
		probValue := float64(it.Value().(int)) / count
		result -= probValue * math.Log2(probValue)
	}
	return result, nil
}

/*
InformationGain takes the index of a feature column and returns the
reduction of entropy obtained by partitioning the dataset on the values
of that column. An error is returned if the dataset is empty or the
column is not a feature column.
*/
func (s *Dataset) InformationGain(column int) (float64, error) {
	if !s.IsFeatureColumn(column) {
		return 0.0, fmt.Errorf("computing information gain: column %d is not a feature column", column)
	}
	informationGain, err := s.Entropy()
	if err != nil {
		return 0.0, err
	}
	totalCount := float64(len(s.rows))
	for _, subset := range s.groupBy(column) {
		sEntropy, err := subset.Entropy()
		if err != nil {
			return 0.0, err
		}
		informationGain -= sEntropy * float64(subset.Count()) / totalCount
	}
	return informationGain, nil
}

/*
CountLabels returns the labels found among the data rows, sorted, along
with the number of data rows for each of them.
*/
func (s *Dataset) CountLabels() ([]string, []int) {
	m := s.labelCounts()
	labels := make([]string, 0, m.Size())
	counts := make([]int, 0, m.Size())
	it := m.Iterator()
	for it.Next() {
		labels = append(labels, it.Key().(string))
		counts = append(counts, it.Value().(int))
	}
	return labels, counts
}

/*
MajorityLabel returns the most frequent label among the data rows. Ties
are broken in favour of the label that sorts first. ErrEmptyDataset is
returned if there are no data rows.
*/
func (s *Dataset) MajorityLabel() (string, error) {
	if len(s.rows) == 0 {
		return "", ErrEmptyDataset
	}
	var result string
	var maxCount int
	labels, counts := s.CountLabels()
	for i, l := range labels {
		if counts[i] > maxCount {
			result = l
			maxCount = counts[i]
		}
	}
	return result, nil
}

/*
Homogeneous returns the label of the first data row and whether all data
rows share it. A dataset without data rows is not homogeneous.
*/
func (s *Dataset) Homogeneous() (string, bool) {
	if len(s.rows) == 0 {
		return "", false
	}
	lc := s.LabelColumn()
	label := s.rows[0][lc]
	for _, r := range s.rows[1:] {
		if r[lc] != label {
			return label, false
		}
	}
	return label, true
}

/*
DistinctValues takes a column index and returns the distinct values found
on that column among the data rows in the order they are first seen.
*/
func (s *Dataset) DistinctValues(column int) []string {
	set := linkedhashset.New()
	for _, r := range s.rows {
		set.Add(r[column])
	}
	result := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		result = append(result, v.(string))
	}
	return result
}

/*
SubsetWithout takes a column index and a value and returns a new dataset
with the rows whose cell on that column equals the value, and with that
column removed from both the header and the rows.
*/
func (s *Dataset) SubsetWithout(column int, value string) *Dataset {
	var rows []Row
	for _, r := range s.rows {
		if r[column] == value {
			rows = append(rows, r.without(column))
		}
	}
	return &Dataset{header: s.header.without(column), rows: rows}
}

/*
Split takes a function deciding for every data row, given its index, whether
it goes to the second dataset, and returns two datasets with the header of s:
one with the rows the function rejected and one with those it accepted.
*/
func (s *Dataset) Split(toSecond func(int, Row) bool) (*Dataset, *Dataset) {
	first := &Dataset{header: s.header}
	second := &Dataset{header: s.header}
	for i, r := range s.rows {
		if toSecond(i, r) {
			second.rows = append(second.rows, r)
		} else {
			first.rows = append(first.rows, r)
		}
	}
	return first, second
}

func (s *Dataset) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(s.header, ","))
	for _, r := range s.rows {
		b.WriteString("\n")
		b.WriteString(strings.Join(r, ","))
	}
	return b.String()
}

func (s *Dataset) labelCounts() *treemap.Map {
	result := treemap.NewWithStringComparator()
	lc := s.LabelColumn()
	for _, r := range s.rows {
		c, ok := result.Get(r[lc])
		if !ok {
			c = 0
		}
		result.Put(r[lc], c.(int)+1)
	}
	return result
}

// groupBy returns subsets keeping every column, one per distinct value of the column
func (s *Dataset) groupBy(column int) []*Dataset {
	subsets := make(map[string]*Dataset)
	var order []string
	for _, r := range s.rows {
		ss, ok := subsets[r[column]]
		if !ok {
			ss = &Dataset{header: s.header}
			subsets[r[column]] = ss
			order = append(order, r[column])
		}
		ss.rows = append(ss.rows, r)
	}
	result := make([]*Dataset, 0, len(order))
	for _, v := range order {
		result = append(result, subsets[v])
	}
	return result
}

func (r Row) without(column int) Row {
	result := make(Row, 0, len(r)-1)
	result = append(result, r[:column]...)
	return append(result, r[column+1:]...)
}
