package tree

import "fmt"

const (
	featureKey  = "feature"
	decisionKey = "decision"
	childrenKey = "children"
)

/*
Document is the nested keyed representation of a tree node used to persist
trees. It has the following keys:
 * "feature": a string with the feature of the node, "" if it has none
 * "decision": a string with the decision of the node, "" if it has none
 * "children": a Document whose keys are attribute values and whose values
   are the Documents for the corresponding children
*/
type Document map[string]interface{}

// DocumentError represents an error related with tree documents
type DocumentError string

/*
ErrMalformedDocument is the error returned when a document does not have
the structure expected for a tree node.
*/
const ErrMalformedDocument = DocumentError("malformed tree document")

func (de DocumentError) Error() string {
	return string(de)
}

/*
ToDocument takes a node and returns its Document representation. Feature
and decision keys are always present, holding "" when the node has none.
*/
func ToDocument(n *Node) Document {
	children := make(map[string]interface{}, len(n.Children))
	for v, c := range n.Children {
		children[v] = ToDocument(c)
	}
	return Document{
		featureKey:  n.Feature,
		decisionKey: n.Decision,
		childrenKey: children,
	}
}

/*
FromDocument takes a Document and returns the tree it represents or an error
wrapping ErrMalformedDocument. Missing feature, decision or children keys are
taken as empty. Children whose value is not an object are ignored.
*/
func FromDocument(doc Document) (*Node, error) {
	return fromDocument(map[string]interface{}(doc), "")
}

func fromDocument(doc map[string]interface{}, path string) (*Node, error) {
	n := &Node{}
	var err error
	n.Feature, err = stringField(doc, featureKey, path)
	if err != nil {
		return nil, err
	}
	n.Decision, err = stringField(doc, decisionKey, path)
	if err != nil {
		return nil, err
	}
	rawChildren, ok := doc[childrenKey]
	if !ok || rawChildren == nil {
		return n, nil
	}
	children, ok := asObject(rawChildren)
	if !ok {
		return nil, fmt.Errorf("node %q: %s is a %T instead of an object: %w", path, childrenKey, rawChildren, ErrMalformedDocument)
	}
	for v, rawChild := range children {
		child, ok := asObject(rawChild)
		if !ok {
			continue
		}
		cn, err := fromDocument(child, path+"/"+v)
		if err != nil {
			return nil, err
		}
		n.AddChild(v, cn)
	}
	return n, nil
}

func stringField(doc map[string]interface{}, key, path string) (string, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("node %q: %s is a %T instead of a string: %w", path, key, raw, ErrMalformedDocument)
	}
	return s, nil
}

/*
AsDocument takes a value decoded from a JSON or YAML document and returns it
as a Document if it is an object with string keys.
*/
func AsDocument(v interface{}) (Document, error) {
	obj, ok := asObject(v)
	if !ok {
		return nil, fmt.Errorf("document is a %T instead of an object: %w", v, ErrMalformedDocument)
	}
	return Document(obj), nil
}

// asObject accepts the map types produced by the JSON and YAML decoders
func asObject(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case Document:
		return m, true
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		result := make(map[string]interface{}, len(m))
		for k, e := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			result[ks] = e
		}
		return result, true
	}
	return nil, false
}
