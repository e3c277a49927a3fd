package tree

import (
	"context"
	"errors"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/stretchr/testify/require"
)

func outlookTree() *Node {
	n := NewInternal("outlook")
	n.AddChild("sunny", NewLeaf("no"))
	windy := NewInternal("windy")
	windy.AddChild("yes", NewLeaf("no"))
	windy.AddChild("no", NewLeaf("yes"))
	n.AddChild("rain", windy)
	return n
}

func TestClassifyRow(t *testing.T) {
	header := dataset.Row{"id", "outlook", "windy", "play"}
	n := outlookTree()

	label, err := ClassifyRow(n, dataset.Row{"1", "sunny", "yes", ""}, header)
	require.NoError(t, err)
	require.Equal(t, "no", label)

	label, err = ClassifyRow(n, dataset.Row{"2", "rain", "no", ""}, header)
	require.NoError(t, err)
	require.Equal(t, "yes", label)

	_, err = ClassifyRow(n, dataset.Row{"3", "overcast", "no", ""}, header)
	require.True(t, errors.Is(err, ErrUnresolved))

	t.Run("ColumnOrder", func(t *testing.T) {
		label, err := ClassifyRow(n, dataset.Row{"no", "rain", "4"}, dataset.Row{"windy", "outlook", "id"})
		require.NoError(t, err)
		require.Equal(t, "yes", label)
	})
	t.Run("MissingColumn", func(t *testing.T) {
		_, err := ClassifyRow(n, dataset.Row{"5", "rain"}, dataset.Row{"id", "outlook"})
		require.True(t, errors.Is(err, ErrUnresolved))
		require.Contains(t, err.Error(), `no column named "windy"`)

		_, err = Classify(context.Background(), n, dataset.NewSample(dataset.Row{"id", "outlook"}, dataset.Row{"5", "rain"}))
		require.True(t, errors.Is(err, dataset.ErrMissingColumn))
		require.False(t, errors.Is(err, ErrUnresolved))
	})
	t.Run("Deterministic", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			label, err := ClassifyRow(n, dataset.Row{"2", "rain", "yes", ""}, header)
			require.NoError(t, err)
			require.Equal(t, "no", label)
		}
	})
}

func TestClassifyStopsOnDecision(t *testing.T) {
	n := &Node{Feature: "outlook", Decision: "maybe"}
	n.AddChild("sunny", NewLeaf("no"))
	label, err := ClassifyRow(n, dataset.Row{"sunny"}, dataset.Row{"outlook"})
	require.NoError(t, err)
	require.Equal(t, "maybe", label)

	_, err = Classify(context.Background(), &Node{}, dataset.NewSample(nil, nil))
	require.True(t, errors.Is(err, ErrUnresolved))
}

func TestClassifyDataset(t *testing.T) {
	s, err := dataset.FromTable([][]string{
		{"id", "outlook", "windy", "play"},
		{"1", "sunny", "no", "no"},
		{"2", "rain", "no", "no"},
		{"3", "overcast", "no", "yes"},
		{"4", "rain", "yes", "no"},
	})
	require.NoError(t, err)
	results := ClassifyDataset(outlookTree(), s)
	require.Equal(t, []Result{
		{Label: "no", Resolved: true},
		{Label: "yes", Resolved: true},
		{Resolved: false},
		{Label: "no", Resolved: true},
	}, results)

	rate, unresolved := Test(outlookTree(), s)
	require.InDelta(t, 0.5, rate, 1e-9)
	require.Equal(t, 1, unresolved)
}

func TestClassifyDatasetMissingColumn(t *testing.T) {
	s, err := dataset.FromTable([][]string{
		{"id", "outlook", "play"},
		{"1", "sunny", "no"},
		{"2", "rain", "yes"},
	})
	require.NoError(t, err)
	results := ClassifyDataset(outlookTree(), s)
	require.Equal(t, []Result{
		{Label: "no", Resolved: true},
		{Resolved: false},
	}, results)
}
