package memtree

import (
	"github.com/pattyshack/ddlog-lsp/syntax"
)

type Node struct {
	id      uintptr
	kind    uint16
	rng     syntax.Range
	missing bool
	isError bool
	extra   bool

	parent   *Node
	next     *Node
	children []*Node
}

var _ syntax.Node = &Node{}

func (node *Node) Id() uintptr {
	return node.id
}

func (node *Node) KindId() uint16 {
	return node.kind
}

func (node *Node) Range() syntax.Range {
	return node.rng
}

func (node *Node) IsMissing() bool {
	return node.missing
}

func (node *Node) IsError() bool {
	return node.isError
}

func (node *Node) HasError() bool {
	if node.isError || node.missing {
		return true
	}
	for _, child := range node.children {
		if child.HasError() {
			return true
		}
	}
	return false
}

func (node *Node) IsExtra() bool {
	return node.extra
}

func (node *Node) Parent() syntax.Node {
	if node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *Node) FirstChild() syntax.Node {
	if len(node.children) == 0 {
		return nil
	}
	return node.children[0]
}

func (node *Node) NextSibling() syntax.Node {
	if node.next == nil {
		return nil
	}
	return node.next
}

func (node *Node) Children() []*Node {
	return node.children
}

type Tree struct {
	Lang *Language
	root *Node
}

var _ syntax.Tree = &Tree{}

func (tree *Tree) RootNode() syntax.Node {
	return tree.root
}

func (tree *Tree) Root() *Node {
	return tree.root
}

// Edit shifts node ranges the way tree-sitter does before an incremental
// reparse.
func (tree *Tree) Edit(edit syntax.InputEdit) {
	var walk func(*Node)
	walk = func(node *Node) {
		node.rng.StartByte, node.rng.StartPoint = editPosition(
			node.rng.StartByte,
			node.rng.StartPoint,
			edit)
		node.rng.EndByte, node.rng.EndPoint = editPosition(
			node.rng.EndByte,
			node.rng.EndPoint,
			edit)
		for _, child := range node.children {
			walk(child)
		}
	}
	walk(tree.root)
}

func editPosition(
	offset uint32,
	point syntax.Point,
	edit syntax.InputEdit,
) (
	uint32,
	syntax.Point,
) {
	if offset >= edit.OldEndByte {
		offset = offset - edit.OldEndByte + edit.NewEndByte
		if point.Row == edit.OldEndPosition.Row {
			point = syntax.Point{
				Row: edit.NewEndPosition.Row,
				Column: point.Column - edit.OldEndPosition.Column +
					edit.NewEndPosition.Column,
			}
		} else {
			point.Row = point.Row - edit.OldEndPosition.Row +
				edit.NewEndPosition.Row
		}
	} else if offset > edit.StartByte {
		offset = edit.NewEndByte
		point = edit.NewEndPosition
	}
	return offset, point
}
