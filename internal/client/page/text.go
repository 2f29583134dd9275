package page

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags start and end a line.
var blockTags = map[string]bool{
	"p": true, "div": true, "h1": true, "h2": true, "h3": true, "li": true, "br": true,
}

// Text flattens an HTML fragment into plain text: one line per block element,
// whitespace collapsed, blank lines dropped.
func Text(fragment string) string {
	var (
		lines []string
		cur   strings.Builder
	)
	flush := func() {
		if line := strings.Join(strings.Fields(cur.String()), " "); line != "" {
			lines = append(lines, line)
		}
		cur.Reset()
	}

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way the fragment is done.
			flush()
			return strings.Join(lines, "\n")
		case html.TextToken:
			cur.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if blockTags[string(name)] {
				flush()
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if blockTags[string(name)] {
				flush()
			}
		}
	}
}

// VisibleText renders the content of every visible section: visible messages
// first, then list containers. Forms are left to the presenter.
func (d *Document) VisibleText() string {
	var parts []string
	for _, sec := range d.QueryClass(ClassSection) {
		if sec.Hidden() {
			continue
		}
		parts = append(parts, "== "+sec.Label+" ==")
		for _, e := range d.Children(sec.ID) {
			if e.Hidden() {
				continue
			}
			var s string
			switch {
			case e.HTML != "":
				s = Text(e.HTML)
			case e.Text != "":
				s = e.Text
			}
			if s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, "\n")
}
