package id3

import (
	"context"

	"github.com/pbanos/id3/dataset"
)

/*
DefaultMinimumGain is the information gain a partition must exceed to be
selected by the DefaultPruner. It is slightly over zero so that floating
point noise on partitions that provide no information is not mistaken for
a gain.
*/
const DefaultMinimumGain = 1e-9

/*
Pruner is an interface wrapping the Prune method, that is used to decide
whether a partition provides enough information gain to become part of a
tree or must be discarded instead.

The Prune method takes a context, a dataset and a partition of it and returns
a boolean: true to indicate the partition must be discarded, false to allow
its selection.
*/
type Pruner interface {
	Prune(ctx context.Context, s *dataset.Dataset, p *Partition) (bool, error)
}

/*
PrunerFunc wraps a function with the Prune method signature to implement
the Pruner interface
*/
type PrunerFunc func(ctx context.Context, s *dataset.Dataset, p *Partition) (bool, error)

/*
Prune takes a context.Context, a dataset and a partition and invokes the
PrunerFunc with those parameters to return its boolean result.
*/
func (pf PrunerFunc) Prune(ctx context.Context, s *dataset.Dataset, p *Partition) (bool, error) {
	return pf(ctx, s, p)
}

/*
FixedInformationGainPruner takes an informationGainThreshold float64 value
and returns a Pruner whose Prune method returns whether the
informationGainThreshold is greater or equal to the received partition's
information gain. Thresholds below 0 are taken as 0, so partitions that
provide no gain are always pruned.
*/
func FixedInformationGainPruner(informationGainThreshold float64) Pruner {
	if informationGainThreshold < 0 {
		informationGainThreshold = 0
	}
	return PrunerFunc(func(ctx context.Context, s *dataset.Dataset, p *Partition) (bool, error) {
		return informationGainThreshold >= p.informationGain, nil
	})
}

/*
DefaultPruner returns a FixedInformationGainPruner with DefaultMinimumGain
as threshold.
*/
func DefaultPruner() Pruner {
	return FixedInformationGainPruner(DefaultMinimumGain)
}
