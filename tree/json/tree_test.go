package json

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/id3/tree"
	"github.com/stretchr/testify/require"
)

func sampleTree() *tree.Node {
	n := tree.NewInternal("outlook")
	n.AddChild("sunny", tree.NewLeaf("no"))
	windy := tree.NewInternal("windy")
	windy.AddChild("yes", tree.NewLeaf("no"))
	windy.AddChild("no", tree.NewLeaf("yes"))
	n.AddChild("rain", windy)
	return n
}

func TestRoundTrip(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteJSONTree(&b, sampleTree()))
	require.Contains(t, b.String(), "\n    \"children\"")
	n, err := ReadJSONTree(&b)
	require.NoError(t, err)
	require.True(t, tree.Equal(sampleTree(), n))

	data, err := Encode(sampleTree())
	require.NoError(t, err)
	n, err = Decode(data)
	require.NoError(t, err)
	require.True(t, tree.Equal(sampleTree(), n))
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	require.NoError(t, WriteJSONTreeToFile(path, sampleTree()))
	n, err := ReadJSONTreeFromFile(path)
	require.NoError(t, err)
	require.True(t, tree.Equal(sampleTree(), n))

	_, err = ReadJSONTreeFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestDecode(t *testing.T) {
	n, err := Decode([]byte(`{"feature":"","decision":"yes","children":{}}`))
	require.NoError(t, err)
	require.True(t, n.IsLeaf())
	require.Equal(t, "yes", n.Decision)

	for _, doc := range []string{
		`[1, 2]`,
		`{"feature": 1}`,
		`{"feature": "outlook", "children": "sunny"}`,
	} {
		_, err := ReadJSONTree(strings.NewReader(doc))
		require.True(t, errors.Is(err, tree.ErrMalformedDocument), doc)
	}
	_, err = Decode([]byte(`{"feature":`))
	require.Error(t, err)
	require.False(t, errors.Is(err, tree.ErrMalformedDocument))
}
