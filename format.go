package inifile

import (
	"fmt"
	"io"
	"strings"
)

type errWriter struct {
	err error
	n   int64
	w   io.Writer
}

func (e *errWriter) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}
	n, e.err = e.w.Write(p)
	e.n += int64(n)
	return n, e.err
}

// Format writes entries in INI form. Sections after the first are
// separated by a blank line, and the '=' of every definition in a section
// is aligned on the section's longest key. A comment block that leads
// straight into a section gets the blank line instead of the section.
func Format(w io.Writer, entries []Entry) error {
	_, err := format(w, entries)
	return err
}

func format(w io.Writer, entries []Entry) (int64, error) {
	ew := &errWriter{w: w}
	width := 0
	skip := false

	for i, ent := range entries {
		switch ent.Kind {
		case Section:
			if skip {
				fmt.Fprint(ew, "\n")
			}
			fmt.Fprintf(ew, "[%s]", ent.Name)
			writeTrailer(ew, ent)
			width = keyWidth(entries[i+1:])
			skip = true

		case Definition:
			fmt.Fprintf(ew, "%s%s = %s", ent.Key, pad(width, ent.Key), ent.Value)
			writeTrailer(ew, ent)

		case Continuation:
			fmt.Fprintf(ew, "  %s", ent.Value)
			writeTrailer(ew, ent)

		case Comment:
			if skip && ent.attached() && leadsToSection(entries[i+1:]) {
				fmt.Fprint(ew, "\n")
				skip = false
			}
			fmt.Fprintf(ew, ";%s", ent.Comment)
		}
		fmt.Fprint(ew, "\n")
	}

	return ew.n, ew.err
}

func writeTrailer(w io.Writer, ent Entry) {
	if ent.HasComment {
		fmt.Fprintf(w, "\t;%s", ent.Comment)
	}
}

func pad(width int, key string) string {
	if len(key) >= width {
		return ""
	}
	return strings.Repeat(" ", width-len(key))
}

// keyWidth returns the length of the longest key before the next section.
func keyWidth(entries []Entry) (width int) {
	for _, ent := range entries {
		if ent.Kind == Section {
			break
		}
		if ent.Kind == Definition && len(ent.Key) > width {
			width = len(ent.Key)
		}
	}
	return width
}

// leadsToSection reports whether a section follows with only comments in
// between.
func leadsToSection(entries []Entry) bool {
	for _, ent := range entries {
		switch ent.Kind {
		case Section:
			return true
		case Definition, Continuation:
			return false
		}
	}
	return false
}
