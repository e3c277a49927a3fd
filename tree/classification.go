package tree

import (
	"context"
	"errors"
	"fmt"

	"github.com/pbanos/id3/dataset"
)

// ClassificationError represents an error related with classifications
type ClassificationError string

/*
ErrUnresolved is the error returned when a sample cannot be routed to a
decision by the tree, because the value it has for a feature was never
observed for it when growing the tree. It is an expected outcome for the
sample and should not be taken as a failure of the tree.
*/
const ErrUnresolved = ClassificationError("no decision available for this kind of sample")

func (ce ClassificationError) Error() string {
	return string(ce)
}

/*
Sample is an interface for something that can be classified by a tree.

Its ValueFor method takes a context and the name of a feature and returns
the value of the sample for that feature or an error.
*/
type Sample interface {
	ValueFor(context.Context, string) (string, error)
}

/*
Classify takes a context, the root node of a tree and a sample and walks the
tree from the root to return the decision of the first node with one.
On every node without a decision, the sample is asked for the value of the
node's feature and the walk continues on the child for that value. If there
is no such child, or a node has neither decision nor feature, an error
wrapping ErrUnresolved is returned. Errors obtaining values from the sample
are returned as they are.
*/
func Classify(ctx context.Context, n *Node, s Sample) (string, error) {
	if n == nil {
		return "", fmt.Errorf("nil tree cannot classify samples")
	}
	for {
		if n.Decision != "" {
			return n.Decision, nil
		}
		if n.Feature == "" {
			return "", fmt.Errorf("node has neither decision nor feature: %w", ErrUnresolved)
		}
		v, err := s.ValueFor(ctx, n.Feature)
		if err != nil {
			return "", err
		}
		child, ok := n.Children[v]
		if !ok || child == nil {
			return "", fmt.Errorf("%s is %q: %w", n.Feature, v, ErrUnresolved)
		}
		n = child
	}
}

/*
ClassifyRow takes the root node of a tree, a row and the header naming the
columns of the row and returns the decision of the tree for it. The column
for every feature asked by the tree is found by name on the header, so the
row does not need to follow the column order of the dataset the tree was
grown from. A feature missing from the header leaves the row unresolved.
*/
func ClassifyRow(n *Node, row, header dataset.Row) (string, error) {
	return classifySample(n, dataset.NewSample(header, row))
}

func classifySample(n *Node, s *dataset.Sample) (string, error) {
	label, err := Classify(context.Background(), n, s)
	if errors.Is(err, dataset.ErrMissingColumn) {
		return "", fmt.Errorf("%v: %w", err, ErrUnresolved)
	}
	return label, err
}

/*
Result is the outcome of classifying a row: the predicted label, if it
could be resolved.
*/
type Result struct {
	Label    string
	Resolved bool
}

/*
ClassifyDataset takes the root node of a tree and a dataset and returns
a Result for every data row of the dataset, in order. Unresolved rows
get a Result with Resolved set to false.
*/
func ClassifyDataset(n *Node, s *dataset.Dataset) []Result {
	results := make([]Result, 0, s.Count())
	for _, sample := range s.Samples() {
		label, err := classifySample(n, sample)
		results = append(results, Result{Label: label, Resolved: err == nil})
	}
	return results
}

/*
Test takes the root node of a tree and a labeled dataset and returns two
values:
 * the rate of rows on the dataset whose label is the tree's decision for them
 * the number of rows for which no decision could be made
*/
func Test(n *Node, s *dataset.Dataset) (float64, int) {
	if s.Count() == 0 {
		return 0.0, 0
	}
	var result float64
	var unresolved int
	lc := s.LabelColumn()
	for i, r := range ClassifyDataset(n, s) {
		if !r.Resolved {
			unresolved++
			continue
		}
		if r.Label == s.Rows()[i][lc] {
			result += 1.0
		}
	}
	return result / float64(s.Count()), unresolved
}
