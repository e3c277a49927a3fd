/*
Package json provides functions to write trees as JSON documents and
read them back.
*/
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/tree"
)

/*
WriteJSONTree takes an io.Writer and the root node of a tree and serializes
the tree as an indented JSON document onto the io.Writer. Every node is
serialized as a JSON object with the following fields:
* "feature": a string with the feature the node branches on, or ""
* "decision": a string with the decision of the node, or ""
* "children": an object with the attribute values as keys and the
  serialized children as values.
An error is returned if the tree cannot be serialized or written onto
the io.Writer.
*/
func WriteJSONTree(w io.Writer, n *tree.Node) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	err := encoder.Encode(tree.ToDocument(n))
	if err != nil {
		return fmt.Errorf("serializing tree as JSON: %w", err)
	}
	return nil
}

/*
WriteJSONTreeToFile takes a filepath string and the root node of a tree
and tries to create a file on the given filepath and later use
WriteJSONTree to write a JSON representation of the tree on it.
*/
func WriteJSONTreeToFile(filepath string, n *tree.Node) error {
	f, err := os.Create(filepath)
	if err != nil {
		return err
	}
	err = WriteJSONTree(f, n)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

/*
ReadJSONTree takes an io.Reader and attempts to JSON-decode a tree from
it. It returns the root node of the read tree or an error, wrapping
tree.ErrMalformedDocument if the JSON is valid but does not describe a tree.
*/
func ReadJSONTree(r io.Reader) (*tree.Node, error) {
	decoder := json.NewDecoder(r)
	var raw interface{}
	err := decoder.Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("decoding json tree: %w", err)
	}
	doc, err := tree.AsDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding json tree: %w", err)
	}
	n, err := tree.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("decoding json tree: %w", err)
	}
	return n, nil
}

/*
ReadJSONTreeFromFile takes a filepath string, opens the file and uses
ReadJSONTree to return the tree in it.
*/
func ReadJSONTreeFromFile(filepath string) (*tree.Node, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %w", filepath, err)
	}
	defer f.Close()
	n, err := ReadJSONTree(f)
	if err != nil {
		err = fmt.Errorf("parsing tree in JSON from %s: %w", filepath, err)
	}
	return n, err
}

// Encode returns the compact JSON document for the tree under the node
func Encode(n *tree.Node) ([]byte, error) {
	return json.Marshal(tree.ToDocument(n))
}

// Decode takes a JSON document and returns the tree it describes
func Decode(data []byte) (*tree.Node, error) {
	return ReadJSONTree(bytes.NewReader(data))
}
