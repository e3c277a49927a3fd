package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/pbanos/id3/tree"
	"github.com/stretchr/testify/require"
	"gopkg.in/redis.v5"
)

func TestKeyFor(t *testing.T) {
	rs := &redisStore{prefix: "id3:tree"}
	require.Equal(t, "id3:tree:abc", rs.keyFor("abc"))
}

func TestIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := ids.next(idLength)
		require.Len(t, s, idLength)
		require.Regexp(t, "^[A-Za-z0-9]+$", s)
		seen[s] = true
	}
	require.Len(t, seen, 100)
}

func TestUnreachable(t *testing.T) {
	rc := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: 0})
	defer rc.Close()
	store := New(rc, "id3:tree")
	n, err := store.Get(context.Background(), "abc")
	require.Error(t, err)
	require.Nil(t, n)
	_, err = store.Create(context.Background(), tree.NewLeaf("yes"))
	require.Error(t, err)
}

func TestImplementsStore(t *testing.T) {
	var store tree.Store = &redisStore{prefix: "id3:tree"}
	require.NotNil(t, store)
}
