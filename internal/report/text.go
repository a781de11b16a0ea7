package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"
)

// textWriter lays out left-aligned columns separated by two spaces
type textWriter struct {
	tw *tabwriter.Writer
}

func newTextWriter(w io.Writer) *textWriter {
	return &textWriter{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (t *textWriter) heading(title string) {
	rule := strings.Repeat("=", utf8.RuneCountInString(title))
	fmt.Fprintf(t.tw, "%s\n%s\n", title, rule)
}

func (t *textWriter) row(cells ...interface{}) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(t.tw, strings.Join(parts, "\t"))
}

func (t *textWriter) line(s string) {
	fmt.Fprintln(t.tw, s)
}

func (t *textWriter) flush() error {
	return t.tw.Flush()
}
