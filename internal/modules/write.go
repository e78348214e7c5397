package modules

import (
	"github.com/vk/jucer2cmake/internal/cmake"
	"github.com/vk/jucer2cmake/internal/jucer"
)

// Write emits one jucer_project_module call per module.
func Write(w *cmake.Writer, mods []Module) {
	for _, m := range mods {
		args := make([]string, 0, len(m.Options)+2)
		args = append(args, m.ID, "PATH "+cmake.Quoted(m.Path))
		for _, o := range m.Options {
			args = append(args, optionLine(o))
		}
		w.Call("jucer_project_module(", args...)
	}
}

func optionLine(o Option) string {
	switch o.State {
	case jucer.OptionEnabled:
		return o.Name + " ON"
	case jucer.OptionDisabled:
		return o.Name + " OFF"
	}
	return cmake.Placeholder(o.Name)
}
