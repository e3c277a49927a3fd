/*
Package dot exports trees as Graphviz graphs so that they can be laid out
and drawn by external tools.
*/
package dot

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pbanos/id3/tree"
)

// GraphName is the name of the graphs generated by Graph
const GraphName = "tree"

/*
Graph takes the root node of a tree and returns a directed graph with a
graph node for each tree node. Internal nodes are labelled with their feature
and drawn as ellipses, nodes with a decision are labelled with it and drawn as
boxes. Edges go from parents to children labelled with the attribute value
leading to the child.
*/
func Graph(n *tree.Node) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(GraphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}
	if n == nil {
		return g, nil
	}
	var next int
	ids := make(map[*tree.Node]string)
	err := tree.Traverse(context.Background(), n, false, func(_ context.Context, _ string, sn *tree.Node) error {
		id := fmt.Sprintf("n%d", next)
		next++
		ids[sn] = id
		attrs := map[string]string{"shape": "ellipse", "label": strconv.Quote(sn.Feature)}
		if sn.IsTerminal() {
			attrs = map[string]string{"shape": "box", "label": strconv.Quote(sn.Decision)}
		}
		if err := g.AddNode(GraphName, id, attrs); err != nil {
			return fmt.Errorf("adding node %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// children IDs are only known once every node has been added
	err = tree.Traverse(context.Background(), n, false, func(_ context.Context, _ string, sn *tree.Node) error {
		for _, v := range sn.ChildValues() {
			err := g.AddEdge(ids[sn], ids[sn.Children[v]], true, map[string]string{"label": strconv.Quote(v)})
			if err != nil {
				return fmt.Errorf("adding edge for %s: %w", v, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Write takes an io.Writer and the root node of a tree and writes the DOT source for Graph(n) onto it
func Write(w io.Writer, n *tree.Node) error {
	g, err := Graph(n)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, g.String())
	return err
}
