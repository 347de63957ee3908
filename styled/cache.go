// Package styled implements the property cascade cache of a document:
// per-node author and inherited declarations partitioned by
// pseudo-state, runtime user overrides, the packed fast-path lanes, the
// restyle pipeline and the typed getter layer.
package styled

import (
	"errors"
	"sort"

	"github.com/retainedui/cascade/css/compact"
	pr "github.com/retainedui/cascade/css/properties"
	"github.com/retainedui/cascade/dom"
)

var (
	// ErrInvalidNodeId reports an out-of-range node on a mutating
	// operation. Getters instead degrade to the initial value.
	ErrInvalidNodeId = errors.New("styled: invalid node id")

	// ErrShapeMismatch reports a restyle whose DOM collaborators
	// disagree on the node count. The previous cache is left intact.
	ErrShapeMismatch = errors.New("styled: node count mismatch between cache and document")
)

// propEntry is one declaration of a node level.
type propEntry struct {
	Value pr.AnyValue
	Type  pr.PropertyType
}

// propMap is a small ordered map from property to value, kept sorted by
// property tag. Most nodes hold only a handful of entries, so a sorted
// slice beats a heap-allocated map.
type propMap []propEntry

func (m propMap) search(p pr.PropertyType) int {
	return sort.Search(len(m), func(i int) bool { return m[i].Type >= p })
}

func (m propMap) get(p pr.PropertyType) (pr.AnyValue, bool) {
	i := m.search(p)
	if i < len(m) && m[i].Type == p {
		return m[i].Value, true
	}
	return pr.AnyValue{}, false
}

// set inserts or replaces.
func (m *propMap) set(p pr.PropertyType, v pr.AnyValue) {
	i := m.search(p)
	if i < len(*m) && (*m)[i].Type == p {
		(*m)[i].Value = v
		return
	}
	*m = append(*m, propEntry{})
	copy((*m)[i+1:], (*m)[i:])
	(*m)[i] = propEntry{Type: p, Value: v}
}

// setIfAbsent inserts only when p has no entry yet: an inherited value
// never overrides a local declaration.
func (m *propMap) setIfAbsent(p pr.PropertyType, v pr.AnyValue) {
	i := m.search(p)
	if i < len(*m) && (*m)[i].Type == p {
		return
	}
	*m = append(*m, propEntry{})
	copy((*m)[i+1:], (*m)[i:])
	(*m)[i] = propEntry{Type: p, Value: v}
}

// CssPropertyCache answers, for every node and interaction state, the
// computed value of any property. It is rebuilt by Restyle and read by
// the typed getters.
type CssPropertyCache struct {
	// author holds the values produced by selector matching, one
	// bucket per pseudo-state; cascaded holds the values inherited
	// from ancestors, same partition.
	author   [pr.NbStates][]propMap
	cascaded [pr.NbStates][]propMap

	// userOverrides is the highest priority origin. It survives
	// restyles and is cleared only on request.
	userOverrides []propMap

	compact        *compact.Cache
	compactEnabled bool

	// nodes is the document the cache was last restyled against,
	// needed to refresh the packed lanes of a node.
	nodes []dom.NodeData

	nodeCount int
}

// Empty creates a cache for nodeCount nodes with no declaration at all,
// fast path enabled.
func Empty(nodeCount int) *CssPropertyCache {
	c := &CssPropertyCache{nodeCount: nodeCount, compactEnabled: true}
	for s := 0; s < pr.NbStates; s++ {
		c.author[s] = make([]propMap, nodeCount)
		c.cascaded[s] = make([]propMap, nodeCount)
	}
	c.userOverrides = make([]propMap, nodeCount)
	return c
}

// NodeCount returns the number of nodes this cache styles.
func (c *CssPropertyCache) NodeCount() int { return c.nodeCount }

// SetCompactEnabled toggles the packed fast path. Disabling it must not
// change any observable result, only lookup cost.
func (c *CssPropertyCache) SetCompactEnabled(enabled bool) {
	c.compactEnabled = enabled
}

func (c *CssPropertyCache) validNode(id dom.NodeId) bool {
	return id >= 0 && int(id) < c.nodeCount
}

// SetUserOverride installs a runtime override for (node, prop),
// shadowing every stylesheet origin.
func (c *CssPropertyCache) SetUserOverride(id dom.NodeId, p pr.PropertyType, v pr.AnyValue) error {
	if !c.validNode(id) {
		return ErrInvalidNodeId
	}
	c.userOverrides[id].set(p, v)
	if c.compact != nil {
		// write through so the fast path stays consistent
		c.compact.Set(p, int(id), v)
	}
	return nil
}

// ClearUserOverrides drops all runtime overrides of a node.
func (c *CssPropertyCache) ClearUserOverrides(id dom.NodeId) error {
	if !c.validNode(id) {
		return ErrInvalidNodeId
	}
	c.userOverrides[id] = nil
	if c.compact != nil {
		c.repackNode(id)
	}
	return nil
}

// RemoveAllProperties forgets every declaration of a node, at every
// origin.
func (c *CssPropertyCache) RemoveAllProperties(id dom.NodeId) error {
	if !c.validNode(id) {
		return ErrInvalidNodeId
	}
	for s := 0; s < pr.NbStates; s++ {
		c.author[s][id] = nil
		c.cascaded[s][id] = nil
	}
	c.userOverrides[id] = nil
	if c.compact != nil {
		c.repackNode(id)
	}
	return nil
}

func (c *CssPropertyCache) insertAuthor(state pr.PseudoState, id dom.NodeId, p pr.PropertyType, v pr.AnyValue) {
	c.author[state][id].set(p, v)
}

func (c *CssPropertyCache) insertCascaded(state pr.PseudoState, id dom.NodeId, p pr.PropertyType, v pr.AnyValue) {
	c.cascaded[state][id].setIfAbsent(p, v)
}

func (c *CssPropertyCache) getAuthor(state pr.PseudoState, id dom.NodeId, p pr.PropertyType) (pr.AnyValue, bool) {
	return c.author[state][id].get(p)
}

func (c *CssPropertyCache) getCascaded(state pr.PseudoState, id dom.NodeId, p pr.PropertyType) (pr.AnyValue, bool) {
	return c.cascaded[state][id].get(p)
}

// Append merges other into c: all node ids of other are shifted by the
// node count of c, declarations concatenated, the fast path lanes glued
// back to back.
func (c *CssPropertyCache) Append(other *CssPropertyCache) {
	for s := 0; s < pr.NbStates; s++ {
		c.author[s] = append(c.author[s], other.author[s]...)
		c.cascaded[s] = append(c.cascaded[s], other.cascaded[s]...)
	}
	c.userOverrides = append(c.userOverrides, other.userOverrides...)

	switch {
	case c.compact != nil && other.compact != nil:
		c.compact.Append(other.compact)
	case c.compact != nil:
		// the merged fast path would be partial; drop it and let the
		// next restyle rebuild it
		c.compact = nil
	}
	c.nodes = nil
	c.nodeCount += other.nodeCount
}
