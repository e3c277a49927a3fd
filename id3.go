/*
Package id3 grows decision trees from labeled datasets using the ID3
algorithm: every node splits its dataset on the feature with the greatest
information gain until the labels are pure or no feature provides any gain.
*/
package id3

import (
	"context"
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree"
)

// Logger is the interface Builder uses to report decisions worth knowing about
type Logger interface {
	Logf(format string, a ...interface{})
}

/*
Builder grows decision trees. Its Pruner decides which partitions provide
enough information gain to be used, DefaultPruner is used if nil. Its Logger,
if not nil, receives notices on fallback decisions made while growing.
*/
type Builder struct {
	Pruner Pruner
	Logger Logger
}

/*
Build takes a context and a dataset and returns the root node of a tree grown
from it with a Builder with the default pruner and no logger.
*/
func Build(ctx context.Context, s *dataset.Dataset) (*tree.Node, error) {
	return (&Builder{}).Build(ctx, s)
}

/*
Build takes a context and a dataset and returns the root node of a decision
tree grown from it to predict the dataset's label column. The tree and all of
its nodes are new and owned by the caller.

An error wrapping dataset.ErrEmptyDataset is returned if the dataset has no
data rows, and one wrapping dataset.ErrMalformedDataset if any row has an
empty label, since a leaf needs a non-empty decision. The context error is returned if it is cancelled before the tree
is complete.
*/
func (b *Builder) Build(ctx context.Context, s *dataset.Dataset) (*tree.Node, error) {
	if s.Count() == 0 {
		return nil, fmt.Errorf("building tree: %w", dataset.ErrEmptyDataset)
	}
	lc := s.LabelColumn()
	for i, r := range s.Rows() {
		if r[lc] == "" {
			return nil, fmt.Errorf("building tree: row %d has an empty %s: %w", i+1, s.LabelName(), dataset.ErrMalformedDataset)
		}
	}
	pruner := b.Pruner
	if pruner == nil {
		pruner = DefaultPruner()
	}
	return b.build(ctx, s, pruner)
}

func (b *Builder) build(ctx context.Context, s *dataset.Dataset, pruner Pruner) (*tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if label, ok := s.Homogeneous(); ok {
		return tree.NewLeaf(label), nil
	}
	if len(s.FeatureColumns()) == 0 {
		return majorityLeaf(s)
	}
	p, err := SelectBestAttribute(ctx, s, pruner)
	if err != nil {
		return nil, err
	}
	if p == nil {
		b.logf("no feature provides enough information gain among %v for %d rows, making a leaf", s.Header()[1:s.LabelColumn()], s.Count())
		return majorityLeaf(s)
	}
	return b.branch(ctx, s, p, pruner)
}

// branch returns an internal node on the partition's feature with a child grown for every value
func (b *Builder) branch(ctx context.Context, s *dataset.Dataset, p *Partition, pruner Pruner) (*tree.Node, error) {
	n := tree.NewInternal(p.Feature)
	for _, value := range p.Values {
		subset := p.Subset(value)
		var child *tree.Node
		var err error
		if subset.Count() == 0 {
			child, err = b.emptySubsetLeaf(s, p, value)
		} else {
			child, err = b.build(ctx, subset, pruner)
		}
		if err != nil {
			return nil, err
		}
		n.AddChild(value, child)
	}
	return n, nil
}

// emptySubsetLeaf has no rows of its own to vote, so the parent's majority decides
func (b *Builder) emptySubsetLeaf(s *dataset.Dataset, p *Partition, value string) (*tree.Node, error) {
	leaf, err := majorityLeaf(s)
	if err != nil {
		return nil, err
	}
	b.logf("no rows with %s %q, using the majority label %q of the %d rows being split", p.Feature, value, leaf.Decision, s.Count())
	return leaf, nil
}

func majorityLeaf(s *dataset.Dataset) (*tree.Node, error) {
	label, err := s.MajorityLabel()
	if err != nil {
		return nil, err
	}
	return tree.NewLeaf(label), nil
}

func (b *Builder) logf(format string, a ...interface{}) {
	if b.Logger != nil {
		b.Logger.Logf(format, a...)
	}
}
