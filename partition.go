package id3

import (
	"fmt"

	"github.com/pbanos/id3/dataset"
)

/*
Partition represents a partition of a dataset according to the values of a
feature column, with the information gain it provides to predict the label.
*/
type Partition struct {
	Feature         string
	Column          int
	Values          []string
	dataset         *dataset.Dataset
	informationGain float64
}

/*
NewPartition takes a dataset and the index of one of its feature columns and
returns the partition of the dataset on that column or an error if the
information gain cannot be computed.
*/
func NewPartition(s *dataset.Dataset, column int) (*Partition, error) {
	informationGain, err := s.InformationGain(column)
	if err != nil {
		return nil, fmt.Errorf("partitioning on column %d: %w", column, err)
	}
	return &Partition{
		Feature:         s.Header()[column],
		Column:          column,
		Values:          s.DistinctValues(column),
		dataset:         s,
		informationGain: informationGain,
	}, nil
}

// InformationGain returns the information gain of the partition
func (p *Partition) InformationGain() float64 {
	return p.informationGain
}

/*
Subset takes one of the values of the partition and returns the rows of the
partitioned dataset with that value, without the partition column.
*/
func (p *Partition) Subset(value string) *dataset.Dataset {
	return p.dataset.SubsetWithout(p.Column, value)
}

func (p *Partition) String() string {
	return fmt.Sprintf("{%s %v gain: %f}", p.Feature, p.Values, p.informationGain)
}
