package tree

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTraverse(t *testing.T) {
	n := outlookTree()
	var topdown []string
	err := Traverse(context.Background(), n, false, func(_ context.Context, v string, sn *Node) error {
		topdown = append(topdown, v+":"+sn.Feature+sn.Decision)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{":outlook", "rain:windy", "no:yes", "yes:no", "sunny:no"}, topdown)

	var bottomup []string
	err = Traverse(context.Background(), n, true, func(_ context.Context, v string, sn *Node) error {
		bottomup = append(bottomup, v)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"no", "yes", "rain", "sunny", ""}, bottomup)

	stop := errors.New("stop")
	var visited int
	err = Traverse(context.Background(), n, false, func(context.Context, string, *Node) error {
		visited++
		return stop
	})
	require.Equal(t, stop, err)
	require.Equal(t, 1, visited)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Traverse(ctx, n, false, func(context.Context, string, *Node) error { return nil })
	require.True(t, errors.Is(err, context.Canceled))
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(outlookTree(), outlookTree()))
	require.True(t, Equal(nil, nil))
	require.False(t, Equal(outlookTree(), nil))
	other := outlookTree()
	other.Children["rain"].Children["no"].Decision = "no"
	require.False(t, Equal(outlookTree(), other))
	other = outlookTree()
	other.AddChild("overcast", NewLeaf("yes"))
	require.False(t, Equal(outlookTree(), other))
}

func TestShape(t *testing.T) {
	n := outlookTree()
	require.Equal(t, 3, Depth(n))
	nodes, leaves := Size(n)
	require.Equal(t, 5, nodes)
	require.Equal(t, 3, leaves)
	require.Equal(t, map[string][]string{
		"outlook": {"rain", "sunny"},
		"windy":   {"no", "yes"},
	}, FeatureValues(n))
	require.True(t, NewLeaf("yes").IsLeaf())
	require.False(t, n.IsLeaf())
	require.False(t, n.IsTerminal())
}

func TestString(t *testing.T) {
	expected := "[outlook]\n" +
		"|\n" +
		"|__{ rain }\n" +
		"|  [windy]\n" +
		"|  |\n" +
		"|  |__{ no }\n" +
		"|  |  ( yes )\n" +
		"|  |__{ yes }\n" +
		"|     ( no )\n" +
		"|__{ sunny }\n" +
		"   ( no )\n"
	require.Equal(t, expected, outlookTree().String())
}
