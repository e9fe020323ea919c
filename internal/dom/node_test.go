package dom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<html><body>
<div class="row"><bdi>Inter</bdi><bdi>Milan</bdi></div>
<div class="row"><bdi>Roma</bdi></div>
</body></html>`

type brokenNode struct{}

func (brokenNode) Find(string) ([]Node, error) { return nil, errors.New("detached") }
func (brokenNode) Text() (string, error)       { return "", errors.New("detached") }

func TestDocumentFind(t *testing.T) {
	doc, err := ParseString(sampleHTML)
	require.NoError(t, err)

	rows, err := doc.Root().Find("div.row")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	second, ok, err := Nth(rows[0], "bdi", 1)
	require.NoError(t, err)
	require.True(t, ok)
	text, err := second.Text()
	require.NoError(t, err)
	assert.Equal(t, "Milan", text)

	_, ok, err = Nth(rows[1], "bdi", 1)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestNthNoMatch(t *testing.T) {
	doc, err := ParseString(sampleHTML)
	require.NoError(t, err)

	_, ok, err := Nth(doc.Root(), "span.missing", 0)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestNthPropagatesLookupError(t *testing.T) {
	_, ok, err := Nth(brokenNode{}, "bdi", 0)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestSnapshotTextIsTextContent(t *testing.T) {
	doc, err := ParseString(`<div><bdi>Inter<span style="display:none"> U23</span></bdi></div>`)
	require.NoError(t, err)

	n, ok, err := Nth(doc.Root(), "bdi", 0)
	require.NoError(t, err)
	require.True(t, ok)
	text, err := n.Text()
	require.NoError(t, err)
	// hidden text is kept; a live handle's innerText would drop it
	assert.Equal(t, "Inter U23", text)
}
