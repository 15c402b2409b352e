package gen

import "strings"

// tsWriter is used to build the generated TypeScript files.
type tsWriter struct {
	strings.Builder
	newLine bool
	indent  int
}

func (w *tsWriter) Indent() {
	w.indent += 1
}

func (w *tsWriter) DeIndent() {
	w.indent -= 1
}

func (w *tsWriter) WriteNewLine() {
	_ = w.Builder.WriteByte('\n')
	w.newLine = true
}

func (w *tsWriter) WriteString(str string) {
	w.checkNewline()
	_, _ = w.Builder.WriteString(str)
}

func (w *tsWriter) WriteLine(str string) {
	w.WriteString(str)
	w.WriteNewLine()
}

func (w *tsWriter) checkNewline() {
	if w.newLine {
		w.newLine = false

		for i := 0; i < w.indent; i += 1 {
			_, _ = w.Builder.WriteString("  ")
		}
	}
}
