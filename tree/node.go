package tree

/*
Node is a node of a decision tree. Leaves hold the label they predict in
Decision, whereas internal nodes hold the name of the feature they ask
about in Feature and a child for every value of that feature observed when
growing the tree.
*/
type Node struct {
	// The name of the feature this node branches on, empty for leaves
	Feature string
	// The predicted label, empty for internal nodes
	Decision string
	// The nodes directly under this node, keyed by the value of Feature
	// that leads to them. Each child belongs to this node only.
	Children map[string]*Node
}

// NewLeaf takes a label and returns a leaf node predicting it
func NewLeaf(decision string) *Node {
	return &Node{Decision: decision}
}

// NewInternal takes a feature name and returns a node branching on it without children
func NewInternal(feature string) *Node {
	return &Node{Feature: feature, Children: make(map[string]*Node)}
}

/*
IsLeaf returns whether the node is a leaf: it has a decision and
no children.
*/
func (n *Node) IsLeaf() bool {
	return n.Decision != "" && len(n.Children) == 0
}

/*
IsTerminal returns whether classification stops at this node, which happens
whenever it has a decision, even if it also has children.
*/
func (n *Node) IsTerminal() bool {
	return n.Decision != ""
}

/*
AddChild takes an attribute value and a node and sets the node as the child
for that value, replacing any previous one.
*/
func (n *Node) AddChild(value string, child *Node) {
	if n.Children == nil {
		n.Children = make(map[string]*Node)
	}
	n.Children[value] = child
}
