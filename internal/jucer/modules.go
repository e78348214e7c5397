package jucer

import "github.com/vk/jucer2cmake/internal/xmltree"

// ModulePaths maps module identifiers to their search path.
type ModulePaths struct {
	node xmltree.Node
}

// Lookup returns the path declared for id. The first matching entry wins.
func (m ModulePaths) Lookup(id string) (string, bool) {
	n := xmltree.ChildWith(m.node, "id", id)
	if n == nil {
		return "", false
	}
	return n.Get("path")
}

// OptionState is the project-wide override of a module option.
type OptionState int

const (
	// OptionDefault leaves the module's own default in place.
	OptionDefault OptionState = iota
	OptionEnabled
	OptionDisabled
)

// Options holds the project-wide module option overrides.
type Options struct {
	node xmltree.Node
}

// Get returns the raw override value for an option.
func (o Options) Get(name string) (string, bool) {
	if o.node == nil {
		return "", false
	}
	return o.node.Get(name)
}

// State classifies the override of an option. Only the exact values
// "enabled" and "disabled" count; everything else is the default.
func (o Options) State(name string) OptionState {
	v, _ := o.Get(name)
	switch v {
	case "enabled":
		return OptionEnabled
	case "disabled":
		return OptionDisabled
	}
	return OptionDefault
}
