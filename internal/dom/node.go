// Package dom is the query surface the extractors run against.
// A rendered page can be backed by live browser handles or by a parsed HTML snapshot.
package dom

// Node is one element of a rendered document.
type Node interface {
	// Find returns all descendants matching selector in document order.
	// An empty slice with a nil error means nothing matched.
	Find(selector string) ([]Node, error)

	// Text returns the rendered text content of the element.
	Text() (string, error)
}

// Nth returns the i-th descendant of n matching selector.
// ok is false when nothing matched or the lookup failed; err carries the failure.
func Nth(n Node, selector string, i int) (Node, bool, error) {
	nodes, err := n.Find(selector)
	if err != nil {
		return nil, false, err
	}
	if i < 0 || i >= len(nodes) {
		return nil, false, nil
	}
	return nodes[i], true, nil
}
