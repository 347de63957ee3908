// Package fontchain turns the font-family stacks of a styled document
// into concrete font faces. The (families, weight, style) combinations
// a document uses are deduplicated into chain keys, and each key is
// resolved through the system font index with per-rune fallback.
package fontchain

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/opentype/api/metadata"

	pr "github.com/retainedui/cascade/css/properties"
	"github.com/retainedui/cascade/dom"
	"github.com/retainedui/cascade/styled"
)

// ChainKey identifies one font resolution chain: an ordered family
// stack with the aspect requested for it. It is comparable and used as
// a map key.
type ChainKey struct {
	families string // family names joined by '\x1f'
	Weight   pr.FontWeight
	Style    pr.FontStyle
}

const familySeparator = "\x1f"

// KeyOf builds the chain key of a style bundle.
func KeyOf(families pr.FontFamilies, weight pr.FontWeight, style pr.FontStyle) ChainKey {
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = f.Name
	}
	return ChainKey{
		families: strings.Join(names, familySeparator),
		Weight:   weight,
		Style:    style,
	}
}

// Families returns the ordered family stack of the key.
func (k ChainKey) Families() []string {
	if k.families == "" {
		return nil
	}
	return strings.Split(k.families, familySeparator)
}

func (k ChainKey) String() string {
	return fmt.Sprintf("%s (weight %s, %s)", strings.Join(k.Families(), ", "), k.Weight, k.Style)
}

// CollectKeys walks the text nodes of a document and returns the chain
// keys their computed styles require, deduplicated, in document order.
func CollectKeys(cache *styled.CssPropertyCache, doc *dom.Document, state styled.NodeState) []ChainKey {
	var out []ChainKey
	seen := map[ChainKey]struct{}{}
	for i := range doc.Nodes {
		node := &doc.Nodes[i]
		if !node.IsText() {
			continue
		}
		props := cache.GetStyleProperties(node, dom.NodeId(i), state)
		key := KeyOf(props.FontFamilies, props.FontWeight, props.FontStyle)
		if _, in := seen[key]; in {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// Resolver matches chain keys against the platform font index.
// It is not safe for concurrent use.
type Resolver struct {
	fm *fontscan.FontMap
}

// NewResolver scans the system fonts into a resolver. The index is
// cached under dir; os.TempDir is a reasonable choice.
func NewResolver(dir string) (*Resolver, error) {
	fm := fontscan.NewFontMap(nil)
	if err := fm.UseSystemFonts(dir); err != nil {
		return nil, fmt.Errorf("scanning system fonts: %s", err)
	}
	return &Resolver{fm: fm}, nil
}

// AddFontFile registers a font file under the given family, letting
// file and embedded sources take part in resolution without a system
// lookup.
func (r *Resolver) AddFontFile(path, family string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := r.fm.AddFont(f, path, family); err != nil {
		return fmt.Errorf("loading font %s: %s", path, err)
	}
	return nil
}

// queryOf translates a chain key into a font index query.
func queryOf(key ChainKey) fontscan.Query {
	aspect := metadata.Aspect{
		Style:  metadata.StyleNormal,
		Weight: metadata.Weight(key.Weight),
	}
	if key.Style == pr.FontStyleItalic || key.Style == pr.FontStyleOblique {
		aspect.Style = metadata.StyleItalic
	}
	return fontscan.Query{
		Families: key.Families(),
		Aspect:   aspect,
	}
}

// ResolveFace returns the face serving r under the given chain key,
// walking the family stack and falling back per rune. It returns the
// zero face when the font map has no candidate at all.
func (rv *Resolver) ResolveFace(key ChainKey, r rune) font.Face {
	rv.fm.SetQuery(queryOf(key))
	return rv.fm.ResolveFace(r)
}

// ResolveChain resolves the faces needed to render text under the
// given chain key, in order of first use, deduplicated.
func (rv *Resolver) ResolveChain(key ChainKey, text string) []font.Face {
	rv.fm.SetQuery(queryOf(key))
	var out []font.Face
	seen := map[font.Face]struct{}{}
	for _, r := range text {
		face := rv.fm.ResolveFace(r)
		if face == nil {
			continue
		}
		if _, in := seen[face]; in {
			continue
		}
		seen[face] = struct{}{}
		out = append(out, face)
	}
	return out
}
