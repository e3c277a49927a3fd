package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/csv"
	"github.com/pbanos/id3/dataset/mongodataset"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pbanos/id3/dataset/sqldataset/pgadapter"
	"github.com/pbanos/id3/dataset/sqldataset/sqlite3adapter"
	"github.com/pbanos/id3/tree"
	"github.com/pbanos/id3/tree/dot"
	treejson "github.com/pbanos/id3/tree/json"
	"github.com/pbanos/id3/tree/redisstore"
	treeyaml "github.com/pbanos/id3/tree/yaml"
	mgo "gopkg.in/mgo.v2"
	redis "gopkg.in/redis.v5"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatDOT  = "dot"
	formatText = "text"
)

// datasetLocation identifies where a dataset is read from or written to
type datasetLocation struct {
	path     string
	table    string
	maxConns int
}

func treeFormat(f string) (string, error) {
	switch strings.ToLower(f) {
	case "json":
		return formatJSON, nil
	case "yaml", "yml":
		return formatYAML, nil
	case "dot":
		return formatDOT, nil
	case "text", "txt":
		return formatText, nil
	}
	return "", fmt.Errorf("unknown tree format %s, valid ones are json, yaml, dot and text", f)
}

func isPostgreSQL(path string) bool {
	return strings.HasPrefix(path, "postgresql://") || strings.HasPrefix(path, "postgres://")
}

func isMongoDB(path string) bool {
	return strings.HasPrefix(path, "mongodb://")
}

func isRedis(path string) bool {
	return strings.HasPrefix(path, "redis://")
}

/*
parseMongoURL takes a MongoDB URL with a collection query parameter and
returns the URL without it to dial MongoDB, and the collection name.
*/
func parseMongoURL(rawURL string) (string, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("parsing MongoDB URL: %w", err)
	}
	q := u.Query()
	collection := q.Get("collection")
	if collection == "" {
		return "", "", fmt.Errorf("MongoDB URL %s has no collection parameter", rawURL)
	}
	q.Del("collection")
	u.RawQuery = q.Encode()
	return u.String(), collection, nil
}

/*
parseRedisURL takes a redis URL with an optional id query parameter and
returns the options to connect to redis and the id.
*/
func parseRedisURL(rawURL string) (*redis.Options, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", fmt.Errorf("parsing redis URL: %w", err)
	}
	id := u.Query().Get("id")
	u.RawQuery = ""
	opts, err := redis.ParseURL(u.String())
	if err != nil {
		return nil, "", fmt.Errorf("parsing redis URL: %w", err)
	}
	return opts, id, nil
}

func readDataset(ctx context.Context, l logger, loc datasetLocation) (*dataset.Dataset, error) {
	switch {
	case loc.path == "":
		l.Logf("Reading dataset from STDIN...")
		return csv.ReadDataset(os.Stdin)
	case isPostgreSQL(loc.path):
		l.Logf("Creating PostgreSQL adapter for url %s to read table %s...", loc.path, loc.table)
		adapter, err := pgadapter.New(loc.path)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqldataset.Open(ctx, adapter, loc.table)
	case isMongoDB(loc.path):
		dialURL, collection, err := parseMongoURL(loc.path)
		if err != nil {
			return nil, err
		}
		l.Logf("Connecting to MongoDB at %s to read collection %s...", dialURL, collection)
		session, err := mgo.Dial(dialURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to MongoDB: %w", err)
		}
		defer session.Close()
		return mongodataset.Open(ctx, session, collection)
	case strings.HasSuffix(loc.path, ".db"):
		l.Logf("Creating SQLite3 adapter for file %s to read table %s...", loc.path, loc.table)
		adapter, err := sqlite3adapter.New(loc.path, loc.maxConns)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqldataset.Open(ctx, adapter, loc.table)
	}
	l.Logf("Opening %s to read dataset...", loc.path)
	return csv.ReadDatasetFromFilePath(loc.path)
}

func writeDataset(ctx context.Context, l logger, loc datasetLocation, s *dataset.Dataset) error {
	switch {
	case loc.path == "":
		l.Logf("Using STDOUT to dump dataset...")
		return csv.WriteDataset(os.Stdout, s)
	case isPostgreSQL(loc.path):
		l.Logf("Creating PostgreSQL adapter for url %s to write table %s...", loc.path, loc.table)
		adapter, err := pgadapter.New(loc.path)
		if err != nil {
			return err
		}
		defer adapter.Close()
		return sqldataset.Write(ctx, adapter, loc.table, s)
	case isMongoDB(loc.path):
		dialURL, collection, err := parseMongoURL(loc.path)
		if err != nil {
			return err
		}
		l.Logf("Connecting to MongoDB at %s to write collection %s...", dialURL, collection)
		session, err := mgo.Dial(dialURL)
		if err != nil {
			return fmt.Errorf("connecting to MongoDB: %w", err)
		}
		defer session.Close()
		return mongodataset.Write(ctx, session, collection, s)
	case strings.HasSuffix(loc.path, ".db"):
		l.Logf("Creating SQLite3 adapter for file %s to write table %s...", loc.path, loc.table)
		adapter, err := sqlite3adapter.New(loc.path, loc.maxConns)
		if err != nil {
			return err
		}
		defer adapter.Close()
		return sqldataset.Write(ctx, adapter, loc.table, s)
	}
	l.Logf("Creating %s to dump dataset...", loc.path)
	f, err := os.Create(loc.path)
	if err != nil {
		return err
	}
	err = csv.WriteDataset(f, s)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func loadTree(ctx context.Context, l logger, input, redisPrefix string) (*tree.Node, error) {
	if isRedis(input) {
		opts, id, err := parseRedisURL(input)
		if err != nil {
			return nil, err
		}
		if id == "" {
			return nil, fmt.Errorf("redis URL %s has no id parameter", input)
		}
		l.Logf("Retrieving tree %s from redis at %s...", id, opts.Addr)
		rc := redis.NewClient(opts)
		defer rc.Close()
		store := redisstore.New(rc, redisPrefix)
		n, err := store.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, fmt.Errorf("tree %s not found on redis", id)
		}
		return n, nil
	}
	l.Logf("Reading tree from %s...", input)
	switch strings.ToLower(filepath.Ext(input)) {
	case ".yml", ".yaml":
		return treeyaml.ReadYAMLTreeFromFile(input)
	}
	return treejson.ReadJSONTreeFromFile(input)
}

/*
storeTree writes the tree to the given output: STDOUT in the given format if
output is empty, a new key on redis if it is a redis URL, or a file with its
format chosen by its extension otherwise.
*/
func storeTree(ctx context.Context, l logger, output, format, redisPrefix string, n *tree.Node) error {
	if output == "" {
		return writeTree(os.Stdout, format, n)
	}
	if isRedis(output) {
		opts, id, err := parseRedisURL(output)
		if err != nil {
			return err
		}
		rc := redis.NewClient(opts)
		defer rc.Close()
		store := redisstore.New(rc, redisPrefix)
		if id != "" {
			l.Logf("Storing tree %s on redis at %s...", id, opts.Addr)
			return store.Store(ctx, id, n)
		}
		id, err = store.Create(ctx, n)
		if err != nil {
			return err
		}
		l.Logf("Created tree %s on redis at %s", id, opts.Addr)
		fmt.Println(id)
		return nil
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".yml", ".yaml":
		format = formatYAML
	case ".dot", ".gv":
		format = formatDOT
	case ".txt":
		format = formatText
	case ".json":
		format = formatJSON
	}
	l.Logf("Writing tree as %s onto %s...", format, output)
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	err = writeTree(f, format, n)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeTree(w io.Writer, format string, n *tree.Node) error {
	switch format {
	case formatYAML:
		return treeyaml.WriteYAMLTree(w, n)
	case formatDOT:
		return dot.Write(w, n)
	case formatText:
		_, err := fmt.Fprint(w, n)
		return err
	}
	return treejson.WriteJSONTree(w, n)
}
