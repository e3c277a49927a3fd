/*
Package yaml provides functions to write trees as YAML documents and read
them back.
*/
package yaml

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/pbanos/id3/tree"
	yaml "gopkg.in/yaml.v2"
)

type node struct {
	Feature  string                   `yaml:"feature"`
	Decision string                   `yaml:"decision"`
	Children map[string]*optionalNode `yaml:"children"`
}

// optionalNode is left empty when the YAML value is not a mapping
type optionalNode struct {
	*node
}

func (on *optionalNode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw map[interface{}]interface{}
	if err := unmarshal(&raw); err != nil {
		return nil
	}
	n := &node{}
	err := unmarshal(n)
	if err != nil {
		return err
	}
	on.node = n
	return nil
}

func (n *node) document() tree.Document {
	children := make(map[string]interface{}, len(n.Children))
	for v, c := range n.Children {
		if c != nil && c.node != nil {
			children[v] = c.node.document()
		}
	}
	return tree.Document{
		"feature":  n.Feature,
		"decision": n.Decision,
		"children": children,
	}
}

/*
Marshal takes the root node of a tree and returns a YAML document for it
with the same structure as the tree.Document for the node.
*/
func Marshal(n *tree.Node) ([]byte, error) {
	data, err := yaml.Marshal(map[string]interface{}(tree.ToDocument(n)))
	if err != nil {
		return nil, fmt.Errorf("serializing tree as YAML: %w", err)
	}
	return data, nil
}

/*
Unmarshal takes a YAML document and returns the tree it describes or an
error wrapping tree.ErrMalformedDocument if the YAML does not describe a
tree. Scalar feature and decision values are read as strings, so that
unquoted values like yes or 1 keep their text.
*/
func Unmarshal(data []byte) (*tree.Node, error) {
	var raw interface{}
	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("decoding yaml tree: %w", err)
	}
	if _, err = tree.AsDocument(raw); err != nil {
		return nil, fmt.Errorf("decoding yaml tree: %w", err)
	}
	n := &node{}
	err = yaml.Unmarshal(data, n)
	if err != nil {
		return nil, fmt.Errorf("decoding yaml tree: %v: %w", err, tree.ErrMalformedDocument)
	}
	return tree.FromDocument(n.document())
}

// WriteYAMLTree takes an io.Writer and the root node of a tree and writes the tree onto it as YAML
func WriteYAMLTree(w io.Writer, n *tree.Node) error {
	data, err := Marshal(n)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadYAMLTree takes an io.Reader and reads a tree from the YAML on it
func ReadYAMLTree(r io.Reader) (*tree.Node, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading yaml tree: %w", err)
	}
	return Unmarshal(data)
}

/*
WriteYAMLTreeToFile takes a filepath string and the root node of a tree
and writes the tree as YAML onto a file created at the filepath.
*/
func WriteYAMLTreeToFile(filepath string, n *tree.Node) error {
	data, err := Marshal(n)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filepath, data, 0644)
}

/*
ReadYAMLTreeFromFile takes a filepath string, reads its contents and uses
Unmarshal to return the tree on it.
*/
func ReadYAMLTreeFromFile(filepath string) (*tree.Node, error) {
	data, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading tree yml file %s: %w", filepath, err)
	}
	n, err := Unmarshal(data)
	if err != nil {
		err = fmt.Errorf("parsing tree yml file %s: %w", filepath, err)
	}
	return n, err
}
