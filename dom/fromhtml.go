package dom

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/retainedui/cascade/css/parser"
	pr "github.com/retainedui/cascade/css/properties"
)

// FromHTML parses an HTML document into the node model. Only the
// element tree below <html> is kept; <head> is scanned for the text of
// <style> elements, script and comment nodes are dropped. The style
// attribute of every element feeds its inline declarations.
func FromHTML(r io.Reader) (*Document, error) {
	parsed, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %s", err)
	}
	root := findElement(parsed, atom.Html)
	if root == nil {
		return nil, fmt.Errorf("document has no html element")
	}

	doc := &Document{}
	var convert func(src *html.Node, parent NodeId)
	var appendNode func(data NodeData, parent NodeId) NodeId

	// nodes are created before their children, so parents always have
	// lower ids and the non-leaf depth list stays consistent
	var links [][2]NodeId // (parent, child)
	appendNode = func(data NodeData, parent NodeId) NodeId {
		id := NodeId(len(doc.Nodes))
		doc.Nodes = append(doc.Nodes, data)
		if parent != NilNode {
			links = append(links, [2]NodeId{parent, id})
		}
		return id
	}

	convert = func(src *html.Node, parent NodeId) {
		switch src.Type {
		case html.TextNode:
			text := strings.TrimSpace(src.Data)
			if text == "" {
				return
			}
			appendNode(NodeData{Type: NtText, Text: text}, parent)
			return
		case html.ElementNode:
		default:
			return
		}
		switch src.DataAtom {
		case atom.Head:
			doc.Style += collectStyleText(src)
			return
		case atom.Script, atom.Style:
			if src.DataAtom == atom.Style {
				doc.Style += textContent(src)
			}
			return
		}
		id := appendNode(elementData(src), parent)
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			convert(c, id)
		}
	}
	convert(root, NilNode)

	doc.Tree = NewHierarchy(len(doc.Nodes))
	for _, link := range links {
		doc.Tree.AppendChild(link[0], link[1])
	}
	return doc, nil
}

func elementData(src *html.Node) NodeData {
	tag := strings.ToLower(src.Data)
	data := NodeData{Type: NodeTypeByTag[tag]}
	if data.Type == NtUnknown {
		data.TagName = tag
	}
	for _, attr := range src.Attr {
		switch strings.ToLower(attr.Key) {
		case "id":
			data.Ids = append(data.Ids, strings.Fields(attr.Val)...)
		case "class":
			data.Classes = append(data.Classes, strings.Fields(attr.Val)...)
		case "style":
			for _, d := range parser.ParseInlineStyle(attr.Val) {
				if d.IsDynamic {
					continue
				}
				data.InlineProps = append(data.InlineProps, InlineProperty{
					State: pr.StateNormal,
					Type:  d.Type,
					Value: d.Value,
				})
			}
		case "tabindex":
			if n, err := strconv.Atoi(attr.Val); err == nil {
				if n < 0 {
					data.TabIndex = &TabIndex{Kind: TabIndexNoKeyboardFocus}
				} else {
					data.TabIndex = &TabIndex{Kind: TabIndexOverrideInParent, Index: int32(n)}
				}
			}
		case "src":
			if data.Type == NtImage {
				data.ImageSource = attr.Val
			}
		}
	}
	return data
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func collectStyleText(head *html.Node) string {
	out := ""
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Style {
			out += textContent(c)
		}
	}
	return out
}

func textContent(n *html.Node) string {
	out := ""
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			out += c.Data
		}
	}
	return out
}
