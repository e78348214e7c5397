package jucer

import "github.com/vk/jucer2cmake/internal/xmltree"

// Exporter is one export target (an IDE or toolchain backend).
type Exporter struct {
	node xmltree.Node
}

// ID is the exporter's tag, e.g. XCODE_MAC.
func (e *Exporter) ID() string {
	return e.node.Tag()
}

// Property returns an exporter attribute.
func (e *Exporter) Property(name string) (string, bool) {
	return e.node.Get(name)
}

// TargetFolder is the folder the native project is generated into, relative
// to the project file's directory.
func (e *Exporter) TargetFolder() string {
	return xmltree.Value(e.node, "targetFolder")
}

// VST3Folder is the exporter's explicit VST3 SDK folder, possibly empty.
func (e *Exporter) VST3Folder() string {
	return xmltree.Value(e.node, "vst3Folder")
}

// Configurations returns the build configurations in document order.
func (e *Exporter) Configurations() []*Configuration {
	n := xmltree.Child(e.node, tagConfigurations)
	if n == nil {
		return nil
	}
	var out []*Configuration
	for _, c := range n.Children() {
		out = append(out, &Configuration{node: c})
	}
	return out
}

// Configuration is a named build configuration of an exporter.
type Configuration struct {
	node xmltree.Node
}

// Name is the configuration name, e.g. Debug.
func (c *Configuration) Name() string {
	return xmltree.Value(c.node, "name")
}

// Property returns a configuration attribute.
func (c *Configuration) Property(name string) (string, bool) {
	return c.node.Get(name)
}

// HeaderPath is the raw, newline-separated header search path list.
func (c *Configuration) HeaderPath() string {
	return xmltree.Value(c.node, "headerPath")
}
