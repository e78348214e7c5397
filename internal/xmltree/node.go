package xmltree

// Node is the narrow view of a parsed document that typed readers build on.
type Node interface {
	// Tag returns the element name of the node.
	Tag() string
	// Get returns the value of the named attribute and whether it exists.
	Get(name string) (string, bool)
	// Children returns the child elements in document order.
	Children() []Node
}

// Attr is a single attribute of an Element.
type Attr struct {
	Name  string
	Value string
}

// Element is the in-memory Node implementation produced by Parse.
type Element struct {
	Name  string
	Attrs []Attr
	Kids  []Node
}

// Tag implements Node.
func (e *Element) Tag() string {
	return e.Name
}

// Get implements Node. When an attribute is repeated, the first one wins.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Children implements Node.
func (e *Element) Children() []Node {
	return e.Kids
}

// Child returns the first child of n with the given tag, or nil.
func Child(n Node, tag string) Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children() {
		if c.Tag() == tag {
			return c
		}
	}
	return nil
}

// ChildWith returns the first child of n whose attribute name equals value,
// or nil.
func ChildWith(n Node, name, value string) Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children() {
		if v, ok := c.Get(name); ok && v == value {
			return c
		}
	}
	return nil
}

// Value returns the attribute of n, or "" when n is nil or lacks it.
func Value(n Node, name string) string {
	if n == nil {
		return ""
	}
	v, _ := n.Get(name)
	return v
}
