package jucer

import (
	"errors"
	"fmt"

	"github.com/vk/jucer2cmake/internal/xmltree"
)

// RootTag is the tag every project document must have at its root.
const RootTag = "JUCERPROJECT"

// Child node tags.
const (
	tagMainGroup      = "MAINGROUP"
	tagModules        = "MODULES"
	tagExportFormats  = "EXPORTFORMATS"
	tagJuceOptions    = "JUCEOPTIONS"
	tagModulePaths    = "MODULEPATHS"
	tagConfigurations = "CONFIGURATIONS"
	tagFile           = "FILE"
)

// Project types as stored in the projectType attribute.
const (
	TypeGUIApp     = "guiapp"
	TypeConsoleApp = "consoleapp"
	TypeLibrary    = "library"
	TypeAudioPlug  = "audioplug"
)

// ErrNotJucerProject is returned when the document root is not a project.
var ErrNotJucerProject = errors.New("not a valid Jucer project")

// Project is the root of a .jucer document.
type Project struct {
	node xmltree.Node
}

// New wraps root, checking that it is a project document.
func New(root xmltree.Node) (*Project, error) {
	if root == nil || root.Tag() != RootTag {
		return nil, ErrNotJucerProject
	}
	return &Project{node: root}, nil
}

// Load parses the project file at path.
func Load(path string) (*Project, error) {
	root, err := xmltree.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s is not a valid Jucer project: %w", path, err)
	}
	p, err := New(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Property returns a project attribute.
func (p *Project) Property(name string) (string, bool) {
	return p.node.Get(name)
}

// Int returns a project attribute as an integer, see ParseInt.
func (p *Project) Int(name string) (int, bool) {
	return intProperty(p.node, name)
}

// Name is the project name.
func (p *Project) Name() string {
	return xmltree.Value(p.node, "name")
}

// Type is the raw projectType attribute.
func (p *Project) Type() string {
	return xmltree.Value(p.node, "projectType")
}

// TypeDescription maps the project type to the label Reprojucer expects.
// Unknown types give an empty string.
func (p *Project) TypeDescription() string {
	switch p.Type() {
	case TypeGUIApp:
		return "GUI Application"
	case TypeConsoleApp:
		return "Console Application"
	case TypeLibrary:
		return "Static Library"
	case TypeAudioPlug:
		return "Audio Plug-in"
	}
	return ""
}

// MainGroup returns the root of the group tree, or nil when the project has
// none.
func (p *Project) MainGroup() *Group {
	n := xmltree.Child(p.node, tagMainGroup)
	if n == nil {
		return nil
	}
	return &Group{node: n}
}

// ModuleIDs lists the declared modules in document order.
func (p *Project) ModuleIDs() []string {
	var ids []string
	modules := xmltree.Child(p.node, tagModules)
	if modules == nil {
		return nil
	}
	for _, m := range modules.Children() {
		ids = append(ids, xmltree.Value(m, "id"))
	}
	return ids
}

// HasModule reports whether a module with the given id is declared.
func (p *Project) HasModule(id string) bool {
	return xmltree.ChildWith(xmltree.Child(p.node, tagModules), "id", id) != nil
}

// ModulePaths returns the module search paths of the first export target.
// Paths declared by later targets are ignored.
func (p *Project) ModulePaths() ModulePaths {
	formats := xmltree.Child(p.node, tagExportFormats)
	if formats == nil || len(formats.Children()) == 0 {
		return ModulePaths{}
	}
	return ModulePaths{node: xmltree.Child(formats.Children()[0], tagModulePaths)}
}

// Options returns the project-wide module option overrides.
func (p *Project) Options() Options {
	return Options{node: xmltree.Child(p.node, tagJuceOptions)}
}

// Exporter returns the export target with the given identifier, or nil.
func (p *Project) Exporter(id string) *Exporter {
	n := xmltree.Child(xmltree.Child(p.node, tagExportFormats), id)
	if n == nil {
		return nil
	}
	return &Exporter{node: n}
}

// Exporters lists every export target in document order.
func (p *Project) Exporters() []*Exporter {
	formats := xmltree.Child(p.node, tagExportFormats)
	if formats == nil {
		return nil
	}
	var out []*Exporter
	for _, n := range formats.Children() {
		out = append(out, &Exporter{node: n})
	}
	return out
}
