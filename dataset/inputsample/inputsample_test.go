package inputsample

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingRequester struct {
	requested []string
	rejected  []string
}

func (rr *recordingRequester) RequestValueFor(feature string, validValues []string) error {
	rr.requested = append(rr.requested, feature)
	return nil
}

func (rr *recordingRequester) RejectValueFor(feature, value string, validValues []string) error {
	rr.rejected = append(rr.rejected, fmt.Sprintf("%s=%s", feature, value))
	return nil
}

func TestValueFor(t *testing.T) {
	ctx := context.Background()
	rr := &recordingRequester{}
	s := New(strings.NewReader("overcast\n sunny \nhigh\n"), rr, map[string][]string{"outlook": {"rain", "sunny"}})

	v, err := s.ValueFor(ctx, "outlook")
	require.NoError(t, err)
	require.Equal(t, "sunny", v)
	require.Equal(t, []string{"outlook=overcast"}, rr.rejected)

	v, err = s.ValueFor(ctx, "outlook")
	require.NoError(t, err)
	require.Equal(t, "sunny", v)
	require.Equal(t, []string{"outlook"}, rr.requested)

	v, err = s.ValueFor(ctx, "humidity")
	require.NoError(t, err)
	require.Equal(t, "high", v)

	_, err = s.ValueFor(ctx, "windy")
	require.Error(t, err)
}

func TestValueForRequesterError(t *testing.T) {
	s := New(strings.NewReader("sunny\n"), failingRequester{}, nil)
	_, err := s.ValueFor(context.Background(), "outlook")
	require.EqualError(t, err, "cannot ask")
}

type failingRequester struct{}

func (failingRequester) RequestValueFor(string, []string) error {
	return fmt.Errorf("cannot ask")
}

func (failingRequester) RejectValueFor(string, string, []string) error {
	return nil
}
