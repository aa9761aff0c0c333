// Package htmltext renders LeetCode problem statements as wrapped plain text.
//
// Prose is collapsed and wrapped, anchors keep their text but lose the target,
// inline code stays in the surrounding sentence and <pre> blocks are emitted
// verbatim as their own block.
package htmltext

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"leetcode-relay/internal/domain/ports"
)

// DefaultWidth is the column prose is wrapped at.
const DefaultWidth = 80

const minWidth = 20

// Converter turns an HTML fragment into plain text.
type Converter struct {
	width int
}

var _ ports.TextConverter = (*Converter)(nil)

// New creates a Converter wrapping at DefaultWidth.
func New() *Converter {
	return NewWithWidth(DefaultWidth)
}

// NewWithWidth creates a Converter wrapping prose at width columns.
func NewWithWidth(width int) *Converter {
	if width < minWidth {
		width = minWidth
	}
	return &Converter{width: width}
}

// Convert renders input as plain text. The result is trimmed.
func (c *Converter) Convert(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return strings.TrimSpace(input)
	}

	r := &renderer{width: c.width}
	r.walk(doc)
	r.flushInline()
	return strings.TrimSpace(r.out.String())
}

type list struct {
	ordered bool
	next    int
}

type renderer struct {
	width int
	out   strings.Builder

	// inline collects prose until the next block boundary.
	inline strings.Builder
	// pending is the number of newlines owed before the next block.
	pending int

	// prefix is written before the first line of the next flushed prose,
	// indent before every following line.
	prefix string
	indent string
	lists  []list
}

func (r *renderer) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		r.inline.WriteString(n.Data)
	case html.ElementNode:
		r.element(n)
	case html.CommentNode:
	default:
		r.children(n)
	}
}

func (r *renderer) children(n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		r.walk(child)
	}
}

func (r *renderer) element(n *html.Node) {
	switch n.DataAtom {
	case atom.Head, atom.Script, atom.Style, atom.Img, atom.Noscript:
		return
	case atom.Br:
		// each br owes its own newline, so <br><br> leaves a blank line
		r.flushInline()
		r.pending++
	case atom.Sup:
		r.inline.WriteByte('^')
		r.children(n)
	case atom.Pre:
		r.flushInline()
		r.breakBlock(2)
		r.writeBlock(r.indented(preformatted(n)))
		r.breakBlock(2)
	case atom.Ul, atom.Ol:
		gap := 2
		if len(r.lists) > 0 {
			gap = 1
		}
		r.lists = append(r.lists, list{ordered: n.DataAtom == atom.Ol, next: 1})
		r.block(n, gap)
		r.lists = r.lists[:len(r.lists)-1]
	case atom.Li:
		r.listItem(n)
	case atom.P, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Blockquote, atom.Table:
		r.block(n, 2)
	case atom.Div, atom.Section, atom.Article, atom.Tr, atom.Dl, atom.Dt, atom.Dd, atom.Hr:
		r.block(n, 1)
	case atom.Td, atom.Th:
		r.children(n)
		r.inline.WriteByte(' ')
	default:
		// a, code, strong, em, span and friends are transparent
		r.children(n)
	}
}

func (r *renderer) block(n *html.Node, gap int) {
	r.flushInline()
	r.breakBlock(gap)
	r.children(n)
	r.flushInline()
	r.breakBlock(gap)
}

func (r *renderer) listItem(n *html.Node) {
	r.flushInline()
	r.breakBlock(1)

	prefix, indent := r.prefix, r.indent
	marker := " * "
	lead := ""
	if depth := len(r.lists); depth > 0 {
		lead = strings.Repeat("   ", depth-1)
		current := &r.lists[depth-1]
		if current.ordered {
			marker = fmt.Sprintf(" %d. ", current.next)
			current.next++
		}
	}
	r.prefix = lead + marker
	r.indent = lead + strings.Repeat(" ", len(marker))

	r.children(n)
	r.flushInline()
	r.breakBlock(1)

	r.prefix, r.indent = prefix, indent
}

// flushInline collapses and wraps the collected prose into one block.
func (r *renderer) flushInline() {
	text := strings.Join(strings.Fields(r.inline.String()), " ")
	r.inline.Reset()
	if text == "" {
		return
	}

	width := r.width - len(r.indent)
	if width < minWidth {
		width = minWidth
	}

	lines := strings.Split(wordwrap.WrapString(text, uint(width)), "\n")
	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			b.WriteString(r.prefix)
		} else {
			b.WriteByte('\n')
			b.WriteString(r.indent)
		}
		b.WriteString(strings.TrimRight(line, " "))
	}

	r.writeBlock(b.String())
	r.prefix = r.indent
}

// indented lays a verbatim block out under the current list marker.
func (r *renderer) indented(text string) string {
	if text == "" || r.prefix == "" && r.indent == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = r.prefix + lines[i]
		} else {
			lines[i] = r.indent + lines[i]
		}
	}
	r.prefix = r.indent
	return strings.Join(lines, "\n")
}

func (r *renderer) writeBlock(text string) {
	if text == "" {
		return
	}
	if r.out.Len() > 0 {
		r.out.WriteString(strings.Repeat("\n", max(r.pending, 1)))
	}
	r.out.WriteString(text)
	r.pending = 0
}

func (r *renderer) breakBlock(n int) {
	if n > r.pending {
		r.pending = n
	}
}

// preformatted returns the text of a <pre> element with its line structure intact.
func preformatted(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		switch {
		case node.Type == html.TextNode:
			b.WriteString(node.Data)
		case node.Type == html.ElementNode && node.DataAtom == atom.Br:
			b.WriteByte('\n')
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(n)

	text := strings.ReplaceAll(b.String(), "\r\n", "\n")
	text = strings.TrimLeft(text, "\n")
	return strings.TrimRight(text, " \t\n")
}
