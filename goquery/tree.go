package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// Node is an element of a Tree.
// Descendants of the node at index i occupy indices i+1 through End-1.
type Node struct {
	Tag     string
	ID      string
	Classes []string

	// Parent is the index of the parent element, or -1 for a top-level element.
	Parent int

	// Index is the position of the element among its parent's element children.
	Index int

	// End is one past the index of the node's last descendant.
	End int

	textStart, textEnd int
}

// Tree is a read-only, flattened view of an HTML document. Element nodes are
// stored in document (pre-order) so every subtree is a contiguous range and
// every text range is a substring of the document text.
type Tree struct {
	Nodes []Node

	text  string
	index map[*html.Node]int
}

// NewTree flattens the element nodes reachable from root.
func NewTree(root *html.Node) *Tree {
	b := &treeBuilder{
		tree: &Tree{index: make(map[*html.Node]int)},
	}
	if root != nil {
		b.walk(root, -1, 0)
	}
	b.tree.text = b.text.String()
	return b.tree
}

type treeBuilder struct {
	tree *Tree
	text strings.Builder
}

func (b *treeBuilder) walk(n *html.Node, parent, sibling int) {
	switch n.Type {
	case html.TextNode:
		b.text.WriteString(n.Data)
		return
	case html.ElementNode:
		i := len(b.tree.Nodes)
		b.tree.Nodes = append(b.tree.Nodes, Node{
			Tag:       n.Data,
			Parent:    parent,
			Index:     sibling,
			textStart: b.text.Len(),
		})
		b.tree.index[n] = i
		for _, attr := range n.Attr {
			switch attr.Key {
			case "id":
				b.tree.Nodes[i].ID = attr.Val
			case "class":
				b.tree.Nodes[i].Classes = strings.Fields(attr.Val)
			}
		}
		b.walkChildren(n, i)
		b.tree.Nodes[i].End = len(b.tree.Nodes)
		b.tree.Nodes[i].textEnd = b.text.Len()
	case html.DocumentNode:
		b.walkChildren(n, parent)
	}
}

func (b *treeBuilder) walkChildren(n *html.Node, parent int) {
	sibling := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.walk(c, parent, sibling)
		if c.Type == html.ElementNode {
			sibling++
		}
	}
}

// Len returns the number of elements in the tree.
func (t *Tree) Len() int {
	return len(t.Nodes)
}

// Lookup returns the index of an html.Node, if it belongs to the tree.
func (t *Tree) Lookup(n *html.Node) (int, bool) {
	i, ok := t.index[n]
	return i, ok
}

// Text returns the concatenated text content of the element at i.
func (t *Tree) Text(i int) string {
	n := &t.Nodes[i]
	return t.text[n.textStart:n.textEnd]
}

// First returns the index of the first element with the given tag, or -1.
func (t *Tree) First(tag string) int {
	for i := range t.Nodes {
		if t.Nodes[i].Tag == tag {
			return i
		}
	}
	return -1
}

// HasClass reports whether the element at i carries the class token.
func (t *Tree) HasClass(i int, class string) bool {
	for _, c := range t.Nodes[i].Classes {
		if c == class {
			return true
		}
	}
	return false
}
