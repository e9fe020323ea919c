package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type selectionNode struct {
	sel *goquery.Selection
}

func (n selectionNode) Find(selector string) ([]Node, error) {
	found := n.sel.Find(selector)
	nodes := make([]Node, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, selectionNode{sel: s})
	})
	return nodes, nil
}

// Text is the textContent of the element, not the layout-aware innerText a live handle returns.
func (n selectionNode) Text() (string, error) {
	return n.sel.Text(), nil
}

// Document is a parsed HTML snapshot of a rendered page.
type Document struct {
	doc *goquery.Document
}

// Parse reads an HTML snapshot.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ParseString is Parse for an in-memory page, as returned by page.Content().
func ParseString(html string) (*Document, error) {
	return Parse(strings.NewReader(html))
}

// Root returns the whole document as a Node.
func (d *Document) Root() Node {
	return selectionNode{sel: d.doc.Selection}
}
