package dataset

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func weatherTable() [][]string {
	return [][]string{
		{"id", "outlook", "play"},
		{"1", "sunny", "no"},
		{"2", "sunny", "no"},
		{"3", "rain", "yes"},
		{"4", "rain", "yes"},
	}
}

func TestNew(t *testing.T) {
	t.Run("Malformed", func(t *testing.T) {
		_, err := New(Row{"id", "a", "label"}, []Row{{"1", "x"}})
		require.True(t, errors.Is(err, ErrMalformedDataset))
		_, err = New(Row{"label"}, nil)
		require.True(t, errors.Is(err, ErrMalformedDataset))
		_, err = FromTable(nil)
		require.True(t, errors.Is(err, ErrMalformedDataset))
	})
	t.Run("Columns", func(t *testing.T) {
		s, err := FromTable(weatherTable())
		require.NoError(t, err)
		require.Equal(t, 4, s.Count())
		require.Equal(t, 3, s.Columns())
		require.Equal(t, 2, s.LabelColumn())
		require.Equal(t, "play", s.LabelName())
		require.Equal(t, []int{1}, s.FeatureColumns())
		require.True(t, s.IsFeatureColumn(1))
		require.False(t, s.IsFeatureColumn(IDColumn))
		require.False(t, s.IsFeatureColumn(2))
		require.Equal(t, 1, s.ColumnIndex("outlook"))
		require.Equal(t, -1, s.ColumnIndex("humidity"))
	})
}

func TestEntropy(t *testing.T) {
	t.Run("SingleLabel", func(t *testing.T) {
		s, err := FromTable([][]string{{"id", "a", "l"}, {"1", "x", "yes"}, {"2", "y", "yes"}})
		require.NoError(t, err)
		e, err := s.Entropy()
		require.NoError(t, err)
		require.InDelta(t, 0.0, e, 1e-9)
	})
	t.Run("EvenSplit", func(t *testing.T) {
		s, err := FromTable(weatherTable())
		require.NoError(t, err)
		e, err := s.Entropy()
		require.NoError(t, err)
		require.InDelta(t, 1.0, e, 1e-9)
	})
	t.Run("Empty", func(t *testing.T) {
		s, err := New(Row{"id", "a", "l"}, nil)
		require.NoError(t, err)
		_, err = s.Entropy()
		require.True(t, errors.Is(err, ErrEmptyDataset))
	})
	t.Run("Concurrent", func(t *testing.T) {
		s, err := FromTable(weatherTable())
		require.NoError(t, err)
		entropies := make([]float64, 8)
		gains := make([]float64, 8)
		errs := make([]error, 16)
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				entropies[i], errs[2*i] = s.Entropy()
			}(i)
			go func(i int) {
				defer wg.Done()
				gains[i], errs[2*i+1] = s.InformationGain(1)
			}(i)
		}
		wg.Wait()
		for i := 0; i < 8; i++ {
			require.NoError(t, errs[2*i])
			require.NoError(t, errs[2*i+1])
			require.InDelta(t, 1.0, entropies[i], 1e-9)
			require.InDelta(t, 1.0, gains[i], 1e-9)
		}
	})
}

func TestInformationGain(t *testing.T) {
	s, err := FromTable([][]string{
		{"id", "outlook", "windy", "play"},
		{"1", "sunny", "no", "no"},
		{"2", "sunny", "yes", "no"},
		{"3", "rain", "no", "yes"},
		{"4", "rain", "yes", "yes"},
		{"5", "overcast", "no", "yes"},
		{"6", "sunny", "yes", "yes"},
	})
	require.NoError(t, err)
	for _, c := range s.FeatureColumns() {
		g, err := s.InformationGain(c)
		require.NoError(t, err)
		require.GreaterOrEqual(t, g, -1e-9)
	}
	outlook, err := s.InformationGain(1)
	require.NoError(t, err)
	windy, err := s.InformationGain(2)
	require.NoError(t, err)
	require.Greater(t, outlook, windy)

	_, err = s.InformationGain(0)
	require.Error(t, err)
	_, err = s.InformationGain(3)
	require.Error(t, err)

	s, err = FromTable(weatherTable())
	require.NoError(t, err)
	g, err := s.InformationGain(1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, g, 1e-9)
}

func TestMajorityLabel(t *testing.T) {
	s, err := FromTable([][]string{{"id", "l"}, {"1", "b"}, {"2", "a"}, {"3", "b"}})
	require.NoError(t, err)
	l, err := s.MajorityLabel()
	require.NoError(t, err)
	require.Equal(t, "b", l)

	labels, counts := s.CountLabels()
	require.Equal(t, []string{"a", "b"}, labels)
	require.Equal(t, []int{1, 2}, counts)

	s, err = FromTable([][]string{{"id", "l"}, {"1", "yes"}, {"2", "no"}})
	require.NoError(t, err)
	l, err = s.MajorityLabel()
	require.NoError(t, err)
	require.Equal(t, "no", l, "ties go to the label that sorts first")

	s, err = New(Row{"id", "l"}, nil)
	require.NoError(t, err)
	_, err = s.MajorityLabel()
	require.True(t, errors.Is(err, ErrEmptyDataset))
}

func TestHomogeneous(t *testing.T) {
	s, err := FromTable([][]string{{"id", "a", "l"}, {"1", "x", "yes"}, {"2", "y", "yes"}})
	require.NoError(t, err)
	l, ok := s.Homogeneous()
	require.True(t, ok)
	require.Equal(t, "yes", l)

	s, err = FromTable(weatherTable())
	require.NoError(t, err)
	_, ok = s.Homogeneous()
	require.False(t, ok)
}

func TestDistinctValuesAndSubset(t *testing.T) {
	s, err := FromTable([][]string{
		{"id", "outlook", "windy", "play"},
		{"1", "sunny", "no", "no"},
		{"2", "rain", "yes", "yes"},
		{"3", "sunny", "yes", "no"},
		{"4", "overcast", "no", "yes"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"sunny", "rain", "overcast"}, s.DistinctValues(1))

	sunny := s.SubsetWithout(1, "sunny")
	require.Equal(t, Row{"id", "windy", "play"}, sunny.Header())
	require.Equal(t, []Row{{"1", "no", "no"}, {"3", "yes", "no"}}, sunny.Rows())
	require.Equal(t, Row{"id", "outlook", "windy", "play"}, s.Header(), "the original dataset is left untouched")

	none := s.SubsetWithout(1, "snow")
	require.Equal(t, 0, none.Count())
}

func TestSample(t *testing.T) {
	s, err := FromTable(weatherTable())
	require.NoError(t, err)
	samples := s.Samples()
	require.Len(t, samples, 4)
	v, err := samples[2].ValueFor(context.Background(), "outlook")
	require.NoError(t, err)
	require.Equal(t, "rain", v)
	_, err = samples[2].ValueFor(context.Background(), "humidity")
	require.True(t, errors.Is(err, ErrMissingColumn))
}

func TestSplit(t *testing.T) {
	s, err := FromTable(weatherTable())
	require.NoError(t, err)
	first, second := s.Split(func(i int, r Row) bool {
		return i%2 == 1
	})
	require.Equal(t, s.Header(), first.Header())
	require.Equal(t, s.Header(), second.Header())
	require.Equal(t, []Row{{"1", "sunny", "no"}, {"3", "rain", "yes"}}, first.Rows())
	require.Equal(t, []Row{{"2", "sunny", "no"}, {"4", "rain", "yes"}}, second.Rows())
}
