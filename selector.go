package id3

import (
	"context"

	"github.com/pbanos/id3/dataset"
)

/*
SelectBestAttribute takes a context, a dataset and a pruner and returns the
partition of the dataset on the feature column with the greatest information
gain among those the pruner does not discard. Columns are evaluated from left
to right and a later column must have a strictly greater gain to replace an
earlier one. If every partition is discarded, or there are no feature columns,
nil is returned, meaning the dataset cannot be usefully split.
*/
func SelectBestAttribute(ctx context.Context, s *dataset.Dataset, pruner Pruner) (*Partition, error) {
	if pruner == nil {
		pruner = DefaultPruner()
	}
	var selectedPartition *Partition
	for _, column := range s.FeatureColumns() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		part, err := NewPartition(s, column)
		if err != nil {
			return nil, err
		}
		pruned, err := pruner.Prune(ctx, s, part)
		if err != nil {
			return nil, err
		}
		if pruned {
			continue
		}
		if selectedPartition == nil || part.informationGain > selectedPartition.informationGain {
			selectedPartition = part
		}
	}
	return selectedPartition, nil
}
