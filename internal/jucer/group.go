package jucer

import "github.com/vk/jucer2cmake/internal/xmltree"

// Item is a child of a Group: either a *File or a nested *Group.
type Item interface {
	item()
}

// Group is a named node of the project's file tree.
type Group struct {
	node xmltree.Node
}

func (*Group) item() {}

// NewGroup wraps n as a group. It is mostly useful in tests.
func NewGroup(n xmltree.Node) *Group {
	return &Group{node: n}
}

// Name is the group's display name.
func (g *Group) Name() string {
	return xmltree.Value(g.node, "name")
}

// Items returns the group's files and subgroups in document order. Any child
// that is not a FILE is treated as a subgroup.
func (g *Group) Items() []Item {
	kids := g.node.Children()
	items := make([]Item, 0, len(kids))
	for _, n := range kids {
		if n.Tag() == tagFile {
			items = append(items, &File{node: n})
		} else {
			items = append(items, &Group{node: n})
		}
	}
	return items
}

// File is a leaf of the group tree.
type File struct {
	node xmltree.Node
}

func (*File) item() {}

// Path is the file path relative to the project file's directory.
func (f *File) Path() string {
	return xmltree.Value(f.node, "file")
}

// IsResource reports whether the file is flagged as a binary resource.
func (f *File) IsResource() bool {
	v, _ := intProperty(f.node, "resource")
	return v == 1
}

// Compile returns the compile flag and whether it is set at all.
func (f *File) Compile() (bool, bool) {
	v, ok := intProperty(f.node, "compile")
	return v != 0, ok
}
