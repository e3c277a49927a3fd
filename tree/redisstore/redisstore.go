/*
Package redisstore provides an implementation of tree.Store that keeps trees
as JSON documents on a redis DB.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/pbanos/id3/tree"
	treejson "github.com/pbanos/id3/tree/json"
	"gopkg.in/redis.v5"
)

const idLength = 20

type redisStore struct {
	rc     *redis.Client
	prefix string
}

/*
New builds a tree.Store backed by a redis DB. Trees are stored as JSON
documents on keys made of the given prefix and the tree ID separated
by a colon.
*/
func New(rc *redis.Client, prefix string) tree.Store {
	return &redisStore{rc, prefix}
}

func (rs *redisStore) Create(ctx context.Context, n *tree.Node) (string, error) {
	data, err := treejson.Encode(n)
	if err != nil {
		return "", fmt.Errorf("creating tree: encoding tree: %w", err)
	}
	var ok bool
	var id string
	for !ok {
		id = ids.next(idLength)
		ok, err = rs.rc.SetNX(rs.keyFor(id), data, 0).Result()
		if err != nil {
			return "", fmt.Errorf("creating tree in redis: %w", err)
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return id, nil
}

func (rs *redisStore) Get(ctx context.Context, id string) (*tree.Node, error) {
	data, err := rs.rc.Get(rs.keyFor(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %w", id, err)
	}
	n, err := treejson.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %w", id, err)
	}
	return n, nil
}

func (rs *redisStore) Store(ctx context.Context, id string, n *tree.Node) error {
	redisID := rs.keyFor(id)
	data, err := treejson.Encode(n)
	if err != nil {
		return fmt.Errorf("storing tree %q: encoding tree: %w", redisID, err)
	}
	_, err = rs.rc.Set(redisID, data, 0).Result()
	if err != nil {
		return fmt.Errorf("storing tree %q in redis: %w", redisID, err)
	}
	return nil
}

func (rs *redisStore) Delete(ctx context.Context, id string) error {
	redisID := rs.keyFor(id)
	_, err := rs.rc.Del(redisID).Result()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %w", redisID, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return nil
}

func (rs *redisStore) keyFor(id string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, id)
}
