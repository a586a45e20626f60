package ll

import (
	"fmt"
	"html"
	"io"
)

// TableAsHTML exports a table to HTML. Rows are non-terminals, columns are
// lookahead terminals, and cells show the right-hand side to expand.
func (t *Table) TableAsHTML(w io.Writer) error {
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("<html><body>\n")
	write(fmt.Sprintf("%s: LL(1) table of size = %d<p>", html.EscapeString(t.name), t.Size()))
	write("<table border=1 cellspacing=0 cellpadding=5>\n")
	write("<tr bgcolor=#cccccc><td></td>\n")
	for _, la := range t.terms {
		write(fmt.Sprintf("<td>%s</td>", html.EscapeString(la.Name)))
	}
	write("</tr>\n")
	var td string // table cell
	for _, A := range t.nonterms {
		write(fmt.Sprintf("<tr><td>%s</td>\n", html.EscapeString(A.Name)))
		for _, la := range t.terms {
			if p, ok := t.Resolve(A, la.TokType()); ok {
				td = html.EscapeString(p.RHSString())
			} else {
				td = "&nbsp;"
			}
			write("<td>")
			write(td)
			write("</td>\n")
		}
		write("</tr>\n")
	}
	write("</table></body></html>\n")
	return err
}
