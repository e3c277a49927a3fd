package csv

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree"
	"github.com/stretchr/testify/require"
)

func TestReadDataset(t *testing.T) {
	t.Run("Trimmed", func(t *testing.T) {
		s, err := ReadDataset(strings.NewReader("id, outlook ,play\n1, sunny, no\n\n2,rain ,yes\n"))
		require.NoError(t, err)
		require.Equal(t, dataset.Row{"id", "outlook", "play"}, s.Header())
		require.Equal(t, []dataset.Row{{"1", "sunny", "no"}, {"2", "rain", "yes"}}, s.Rows())
	})
	t.Run("Malformed", func(t *testing.T) {
		_, err := ReadDataset(strings.NewReader("id,outlook,play\n1,sunny\n"))
		require.True(t, errors.Is(err, dataset.ErrMalformedDataset))
		require.Contains(t, err.Error(), "line 2")
		_, err = ReadDataset(strings.NewReader(""))
		require.True(t, errors.Is(err, dataset.ErrMalformedDataset))
		_, err = ReadDataset(strings.NewReader("play\n"))
		require.True(t, errors.Is(err, dataset.ErrMalformedDataset))
	})
	t.Run("HeaderOnly", func(t *testing.T) {
		s, err := ReadDataset(strings.NewReader("id,outlook,play\n"))
		require.NoError(t, err)
		require.Equal(t, 0, s.Count())
	})
}

func TestWriteDataset(t *testing.T) {
	s, err := dataset.FromTable([][]string{{"id", "outlook", "play"}, {"1", "sunny, hot", "no"}})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "set.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteDataset(f, s))
	require.NoError(t, f.Close())

	read, err := ReadDatasetFromFilePath(path)
	require.NoError(t, err)
	require.Equal(t, s.Header(), read.Header())
	require.Equal(t, s.Rows(), read.Rows())

	_, err = ReadDatasetFromFilePath(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestWriteClassified(t *testing.T) {
	s, err := dataset.FromTable([][]string{{"id", "outlook"}, {"1", "sunny"}, {"2", "overcast"}})
	require.NoError(t, err)
	var b bytes.Buffer
	err = WriteClassified(&b, s, []tree.Result{{Label: "no", Resolved: true}, {}}, "")
	require.NoError(t, err)
	require.Equal(t, "id,outlook,classification\n1,sunny,no\n2,overcast,\n", b.String())
	require.Equal(t, dataset.Row{"id", "outlook"}, s.Header())

	b.Reset()
	err = WriteClassified(&b, s, []tree.Result{{Label: "no", Resolved: true}, {Label: "yes", Resolved: true}}, "predicted")
	require.NoError(t, err)
	require.Equal(t, "id,outlook,predicted\n1,sunny,no\n2,overcast,yes\n", b.String())

	require.Error(t, WriteClassified(&b, s, nil, ""))
}
