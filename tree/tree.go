package tree

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

/*
Traverse takes a context, a root node, a bottomup boolean and an
error-returning function that takes a context, the attribute value that
leads to a node from its parent and the node, and goes through the tree
running the function on every node. The value for the root is "". Children
are visited in the order of their sorted values.

Traverse will call the function with a parent node before calling it for its
children if bottomup is false, and after its children if bottomup is true.
If the given context is cancelled, the context error is returned. If the
function returns an error, the traversing is aborted and the error returned.
*/
func Traverse(ctx context.Context, n *Node, bottomup bool, f func(context.Context, string, *Node) error) error {
	if n == nil {
		return nil
	}
	return traverse(ctx, "", n, bottomup, f)
}

func traverse(ctx context.Context, value string, n *Node, bottomup bool, f func(context.Context, string, *Node) error) error {
	err := ctx.Err()
	if err != nil {
		return err
	}
	if !bottomup {
		err = f(ctx, value, n)
	}
	if err != nil {
		return err
	}
	for _, v := range n.ChildValues() {
		err = traverse(ctx, v, n.Children[v], bottomup, f)
		if err != nil {
			return err
		}
	}
	if bottomup {
		err = f(ctx, value, n)
	}
	return err
}

// ChildValues returns the sorted attribute values of the node's children
func (n *Node) ChildValues() []string {
	values := make([]string, 0, len(n.Children))
	for v := range n.Children {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

/*
Equal takes two nodes and returns whether the trees under them are
structurally equal: same feature and decision on every node and same
child values leading to equal subtrees. Children order does not matter.
*/
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Feature != b.Feature || a.Decision != b.Decision || len(a.Children) != len(b.Children) {
		return false
	}
	for v, ac := range a.Children {
		bc, ok := b.Children[v]
		if !ok || !Equal(ac, bc) {
			return false
		}
	}
	return true
}

// Depth returns the number of levels of the tree under the node
func Depth(n *Node) int {
	if n == nil {
		return 0
	}
	var max int
	for _, c := range n.Children {
		if d := Depth(c); d > max {
			max = d
		}
	}
	return max + 1
}

// Size returns the number of nodes in the tree under the node and the number of them that are leaves
func Size(n *Node) (nodes int, leaves int) {
	Traverse(context.Background(), n, false, func(_ context.Context, _ string, sn *Node) error {
		nodes++
		if sn.IsLeaf() {
			leaves++
		}
		return nil
	})
	return nodes, leaves
}

func (n *Node) String() string {
	return subtreeString("", n)
}

func subtreeString(value string, n *Node) string {
	var result string
	if value != "" {
		result = fmt.Sprintf("{ %s }\n", value)
	}
	if n.Feature != "" {
		result = fmt.Sprintf("%s[%s]\n", result, n.Feature)
	}
	if n.Decision != "" {
		result = fmt.Sprintf("%s( %s )\n", result, n.Decision)
	}
	values := n.ChildValues()
	if len(values) > 0 {
		result = fmt.Sprintf("%s|\n", result)
	}
	for i, v := range values {
		for j, line := range strings.Split(subtreeString(v, n.Children[v]), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == len(values)-1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}

/*
FeatureValues returns, for every feature asked by nodes of the tree, the
sorted attribute values the tree has children for.
*/
func FeatureValues(n *Node) map[string][]string {
	seen := make(map[string]map[string]bool)
	Traverse(context.Background(), n, false, func(_ context.Context, _ string, sn *Node) error {
		if sn.Feature == "" {
			return nil
		}
		if seen[sn.Feature] == nil {
			seen[sn.Feature] = make(map[string]bool)
		}
		for v := range sn.Children {
			seen[sn.Feature][v] = true
		}
		return nil
	})
	result := make(map[string][]string, len(seen))
	for f, vs := range seen {
		values := make([]string, 0, len(vs))
		for v := range vs {
			values = append(values, v)
		}
		sort.Strings(values)
		result[f] = values
	}
	return result
}
