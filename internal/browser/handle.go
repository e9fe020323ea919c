package browser

import (
	"go-sofascore-scraper/internal/dom"

	"github.com/playwright-community/playwright-go"
)

// handleNode exposes a live element handle as a dom.Node.
// Lookups go over the driver connection, so both methods can fail once the page is gone.
type handleNode struct {
	h playwright.ElementHandle
}

func wrapHandles(handles []playwright.ElementHandle) []dom.Node {
	nodes := make([]dom.Node, 0, len(handles))
	for _, h := range handles {
		nodes = append(nodes, handleNode{h: h})
	}
	return nodes
}

func (n handleNode) Find(selector string) ([]dom.Node, error) {
	handles, err := n.h.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	return wrapHandles(handles), nil
}

func (n handleNode) Text() (string, error) {
	return n.h.InnerText()
}
