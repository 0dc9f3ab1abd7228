package ll

import (
	"fmt"
	"html"
	"io"

	"github.com/dekarrin/rosed"
)

// TableAsText exports a transition table as a bordered text table, one line
// per non-terminal and one column per lookahead with at least one transition.
func TableAsText(t *TransitionTable, w io.Writer) error {
	columns := usedColumns(t)
	header := make([]string, 0, len(columns)+1)
	header = append(header, "")
	for _, a := range columns {
		header = append(header, columnLabel(a))
	}
	data := [][]string{header}
	for _, A := range t.g.nonterms {
		line := make([]string, 0, len(columns)+1)
		line = append(line, A.String())
		for _, a := range columns {
			if p, ok := t.Lookup(A, a); ok {
				line = append(line, p.RHSString())
			} else {
				line = append(line, "")
			}
		}
		data = append(data, line)
	}
	out := rosed.Edit("").InsertTableOpts(0, data, 100, rosed.Options{
		TableHeaders: true,
		TableBorders: true,
	}).String()
	_, err := io.WriteString(w, out+"\n")
	return err
}

// TableAsHTML exports a transition table in HTML-format.
func TableAsHTML(t *TransitionTable, w io.Writer) error {
	columns := usedColumns(t)
	ew := &errWriter{w: w}
	ew.printf("<html><body>\n")
	ew.printf("<p>Grammar %s, fingerprint %s</p>\n", html.EscapeString(t.g.Name), t.g.Fingerprint())
	ew.printf("<p>transition table of size = %d</p>\n", t.Size())
	ew.printf("<table border=1 cellspacing=0 cellpadding=5>\n")
	ew.printf("<tr bgcolor=#cccccc><td></td>\n")
	for _, a := range columns {
		ew.printf("<td>%s</td>", html.EscapeString(columnLabel(a)))
	}
	ew.printf("</tr>\n")
	var td string // table cell
	for _, A := range t.g.nonterms {
		ew.printf("<tr><td>%s</td>\n", html.EscapeString(A.String()))
		for _, a := range columns {
			if p, ok := t.Lookup(A, a); ok {
				td = fmt.Sprintf("%d: %s", p.Serial, html.EscapeString(p.RHSString()))
			} else {
				td = "&nbsp;"
			}
			ew.printf("<td>%s</td>\n", td)
		}
		ew.printf("</tr>\n")
	}
	ew.printf("</table></body></html>\n")
	return ew.err
}

func usedColumns(t *TransitionTable) []string {
	used := make([]bool, len(t.columns))
	for _, A := range t.g.nonterms {
		cols, _ := t.matrix.Row(t.rows[A])
		for _, col := range cols {
			used[col] = true
		}
	}
	columns := make([]string, 0, len(t.columns))
	for j, a := range t.columns {
		if used[j] {
			columns = append(columns, a)
		}
	}
	return columns
}

func columnLabel(a string) string {
	if a == EndOfInput {
		return "ε"
	}
	return a
}

// errWriter remembers the first write error and skips all subsequent writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
