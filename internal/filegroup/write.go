package filegroup

import "github.com/vk/jucer2cmake/internal/cmake"

// Write emits every unit. Sources become a jucer_project_files call, followed
// by a set_source_files_properties block when some of them must not be
// compiled; resources become a separate jucer_project_resources call.
func Write(w *cmake.Writer, units []Unit) {
	for _, u := range units {
		writeUnit(w, u)
	}
}

func writeUnit(w *cmake.Writer, u Unit) {
	if len(u.Sources) > 0 {
		w.Line("jucer_project_files(", cmake.Quoted(u.Group))
		for _, p := range u.Sources {
			w.Line("  ", cmake.Quoted(p))
		}
		if len(u.Excluded) > 0 {
			w.Line(")")
			w.Line("set_source_files_properties(")
			for _, p := range u.Excluded {
				w.Line("  ", cmake.Quoted("${JUCER_PROJECT_DIR}/"+p))
			}
			w.Line("  PROPERTIES HEADER_FILE_ONLY TRUE")
		}
		w.Line(")")
		w.Line()
	}

	if len(u.Resources) > 0 {
		args := make([]string, 0, len(u.Resources))
		for _, p := range u.Resources {
			args = append(args, cmake.Quoted(p))
		}
		w.Call("jucer_project_resources("+cmake.Quoted(u.Group), args...)
	}
}
