package fontchain

import (
	"strings"
	"testing"

	"github.com/go-text/typesetting/opentype/api/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retainedui/cascade/css/parser"
	pr "github.com/retainedui/cascade/css/properties"
	"github.com/retainedui/cascade/dom"
	"github.com/retainedui/cascade/styled"
)

func TestKeyRoundTrip(t *testing.T) {
	families := pr.FontFamilies{
		{Name: "Segoe UI"},
		{Name: "sans-serif"},
	}
	key := KeyOf(families, pr.FontWeightBold, pr.FontStyleItalic)
	assert.Equal(t, []string{"Segoe UI", "sans-serif"}, key.Families())
	assert.Equal(t, pr.FontWeightBold, key.Weight)

	// equal stacks compare equal, distinct ones do not
	same := KeyOf(families, pr.FontWeightBold, pr.FontStyleItalic)
	assert.Equal(t, key, same)
	other := KeyOf(families[:1], pr.FontWeightBold, pr.FontStyleItalic)
	assert.NotEqual(t, key, other)
}

func TestQueryAspect(t *testing.T) {
	key := KeyOf(pr.FontFamilies{{Name: "serif"}}, pr.FontWeight(300), pr.FontStyleOblique)
	q := queryOf(key)
	assert.Equal(t, []string{"serif"}, q.Families)
	assert.Equal(t, metadata.StyleItalic, q.Aspect.Style)
	assert.Equal(t, metadata.Weight(300), q.Aspect.Weight)

	normal := queryOf(KeyOf(nil, pr.FontWeightNormal, pr.FontStyleNormal))
	assert.Equal(t, metadata.StyleNormal, normal.Aspect.Style)
}

func TestCollectKeysDeduplicates(t *testing.T) {
	doc, err := dom.FromHTML(strings.NewReader(`<html><body>
		<p>first</p>
		<p>second</p>
		<p class="strong">third</p>
	</body></html>`))
	require.NoError(t, err)

	sheet, err := parser.ParseStylesheet(`
		body { font-family: Arial, sans-serif; }
		.strong { font-weight: bold; }
	`)
	require.NoError(t, err)
	cache := styled.Empty(len(doc.Nodes))
	_, err = cache.RestyleDocument(sheet, doc)
	require.NoError(t, err)

	keys := CollectKeys(cache, doc, styled.NodeState{})
	// the two plain paragraphs share a chain, the bold one gets its own
	require.Len(t, keys, 2)
	assert.Equal(t, []string{"Arial", "sans-serif"}, keys[0].Families())
	assert.Equal(t, pr.FontWeightNormal, keys[0].Weight)
	assert.Equal(t, pr.FontWeightBold, keys[1].Weight)
}
