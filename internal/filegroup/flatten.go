package filegroup

import (
	"strings"

	"github.com/vk/jucer2cmake/internal/fsutil"
	"github.com/vk/jucer2cmake/internal/jucer"
)

// translationUnitExt is the extension of files the build always compiles.
const translationUnitExt = "cpp"

// Unit is one flushed run of files of a group.
type Unit struct {
	// Group is the full group name: group names from the root joined by "/".
	Group string
	// Sources lists every non-resource file.
	Sources []string
	// Excluded lists the sources that must not be compiled. It is a subset of
	// Sources.
	Excluded []string
	// Resources lists the resource files.
	Resources []string
}

// Empty reports whether the unit would produce no output.
func (u Unit) Empty() bool {
	return len(u.Sources) == 0 && len(u.Resources) == 0
}

// Flatten walks the tree rooted at root and returns its non-empty units in
// emission order. A nil root yields nothing.
func Flatten(root *jucer.Group) []Unit {
	if root == nil {
		return nil
	}
	w := &walker{}
	w.walk(root)
	return w.units
}

type walker struct {
	names []string
	units []Unit
}

func (w *walker) walk(g *jucer.Group) {
	w.names = append(w.names, g.Name())
	cur := Unit{Group: strings.Join(w.names, "/")}

	for _, item := range g.Items() {
		switch it := item.(type) {
		case *jucer.File:
			classify(&cur, it)
		case *jucer.Group:
			w.flush(cur)
			cur = Unit{Group: cur.Group}
			w.walk(it)
		}
	}

	w.flush(cur)
	w.names = w.names[:len(w.names)-1]
}

func (w *walker) flush(u Unit) {
	if u.Empty() {
		return
	}
	w.units = append(w.units, u)
}

func classify(u *Unit, f *jucer.File) {
	path := f.Path()
	if f.IsResource() {
		u.Resources = append(u.Resources, path)
		return
	}
	u.Sources = append(u.Sources, path)

	compile, set := f.Compile()
	if set && !compile && fsutil.HasExtension(path, translationUnitExt) {
		u.Excluded = append(u.Excluded, path)
	}
}
