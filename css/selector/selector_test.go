package selector

import (
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pr "github.com/retainedui/cascade/css/properties"
)

func TestParsePath(t *testing.T) {
	p, err := ParsePath("div.wrapper > p:hover")
	require.NoError(t, err)
	assert.Equal(t, []Item{
		Tag{Name: "div"}, Class{Name: "wrapper"},
		Child,
		Tag{Name: "p"}, Pseudo{Kind: PseudoHover},
	}, p.Items)

	p, err = ParsePath("ul li")
	require.NoError(t, err)
	assert.Equal(t, []Item{Tag{Name: "ul"}, Descendant, Tag{Name: "li"}}, p.Items)

	p, err = ParsePath("#main .item + *")
	require.NoError(t, err)
	assert.Equal(t, []Item{
		Id{Name: "main"}, Descendant, Class{Name: "item"},
		AdjacentSibling, Universal{},
	}, p.Items)
}

func TestParsePathErrors(t *testing.T) {
	for _, bad := range []string{
		"", "> div", "div >", "div:unknown", "div:nth-child", "div:nth-child(x)", ".",
	} {
		_, err := ParsePath(bad)
		assert.Error(t, err, bad)
	}
}

func TestSpecificity(t *testing.T) {
	for _, tc := range []struct {
		sel string
		exp cascadia.Specificity
	}{
		{"*", cascadia.Specificity{0, 0, 0}},
		{"div", cascadia.Specificity{0, 0, 1}},
		{".a", cascadia.Specificity{0, 1, 0}},
		{"#x", cascadia.Specificity{1, 0, 0}},
		{"div.a.b", cascadia.Specificity{0, 2, 1}},
		{"#x div:hover", cascadia.Specificity{1, 1, 1}},
		{"ul > li:nth-child(2)", cascadia.Specificity{0, 1, 2}},
	} {
		p, err := ParsePath(tc.sel)
		require.NoError(t, err)
		assert.Equal(t, tc.exp, p.Specificity(), tc.sel)
	}

	// class beats any number of type selectors
	a, _ := ParsePath("html body div p")
	b, _ := ParsePath(".x")
	assert.True(t, a.Specificity().Less(b.Specificity()))
}

func TestStateBucket(t *testing.T) {
	for sel, state := range map[string]pr.PseudoState{
		"div":           pr.StateNormal,
		"div:hover":     pr.StateHover,
		"div:active":    pr.StateActive,
		"div:focus":     pr.StateFocus,
		"div:hover > p": pr.StateNormal,
		"p:first-child": pr.StateNormal,
	} {
		p, err := ParsePath(sel)
		require.NoError(t, err)
		assert.Equal(t, state, p.StateBucket(), sel)
	}
}

func TestGroups(t *testing.T) {
	p, err := ParsePath("div.a > p b:hover")
	require.NoError(t, err)
	gs := p.Groups()
	require.Len(t, gs, 3)

	// rightmost first
	assert.Equal(t, []Item{Tag{Name: "b"}, Pseudo{Kind: PseudoHover}}, gs[0].Items)
	assert.Equal(t, Descendant, gs[0].LinkLeft)
	assert.True(t, gs[0].HasLink)

	assert.Equal(t, []Item{Tag{Name: "p"}}, gs[1].Items)
	assert.Equal(t, Child, gs[1].LinkLeft)

	assert.Equal(t, []Item{Tag{Name: "div"}, Class{Name: "a"}}, gs[2].Items)
	assert.False(t, gs[2].HasLink)
}

func TestNthMatches(t *testing.T) {
	even := Nth{A: 2, B: 0}
	odd := Nth{A: 2, B: 1}
	assert.False(t, even.Matches(1))
	assert.True(t, even.Matches(2))
	assert.True(t, odd.Matches(1))
	assert.False(t, odd.Matches(2))

	third := Nth{A: 0, B: 3}
	assert.True(t, third.Matches(3))
	assert.False(t, third.Matches(6))

	firstThree := Nth{A: -1, B: 3}
	assert.True(t, firstThree.Matches(1))
	assert.True(t, firstThree.Matches(3))
	assert.False(t, firstThree.Matches(4))
}
