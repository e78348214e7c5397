package cmake

import "io"

// Writer writes a script line by line. The first write error is kept and
// every later write becomes a no-op; check it once with Err.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns a Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Line writes the concatenation of parts followed by a newline. Without
// parts it writes an empty line.
func (w *Writer) Line(parts ...string) {
	for _, p := range parts {
		w.write(p)
	}
	w.write("\n")
}

// Call writes a call whose opening line is head, one indented line per
// argument, the closing parenthesis and one blank separator line.
func (w *Writer) Call(head string, args ...string) {
	w.Line(head)
	for _, a := range args {
		w.Line("  ", a)
	}
	w.Line(")")
	w.Line()
}

// Err returns the first error met while writing.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(s string) {
	if w.err != nil || s == "" {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}
