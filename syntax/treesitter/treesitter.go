// Package treesitter adapts github.com/tree-sitter/go-tree-sitter to the
// syntax interfaces.
package treesitter

import (
	"context"
	"fmt"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/pattyshack/ddlog-lsp/syntax"
)

type Language struct {
	raw *tree_sitter.Language
}

var _ syntax.Language = Language{}

func NewLanguage(raw *tree_sitter.Language) Language {
	return Language{raw: raw}
}

func (lang Language) Raw() *tree_sitter.Language {
	return lang.raw
}

func (lang Language) IdForNodeKind(kind string, named bool) uint16 {
	return lang.raw.IdForNodeKind(kind, named)
}

func (lang Language) FieldIdForName(name string) uint16 {
	return lang.raw.FieldIdForName(name)
}

func (lang Language) NodeKindForId(id uint16) string {
	return lang.raw.NodeKindForId(id)
}

type node struct {
	raw *tree_sitter.Node
}

var _ syntax.Node = node{}

func wrap(raw *tree_sitter.Node) syntax.Node {
	if raw == nil {
		return nil
	}
	return node{raw: raw}
}

func (n node) Id() uintptr {
	return n.raw.Id()
}

func (n node) KindId() uint16 {
	return n.raw.KindId()
}

func (n node) Range() syntax.Range {
	start := n.raw.StartPosition()
	end := n.raw.EndPosition()
	return syntax.Range{
		StartByte:  uint32(n.raw.StartByte()),
		EndByte:    uint32(n.raw.EndByte()),
		StartPoint: syntax.Point{Row: uint32(start.Row), Column: uint32(start.Column)},
		EndPoint:   syntax.Point{Row: uint32(end.Row), Column: uint32(end.Column)},
	}
}

func (n node) IsMissing() bool {
	return n.raw.IsMissing()
}

func (n node) IsError() bool {
	return n.raw.IsError()
}

func (n node) HasError() bool {
	return n.raw.HasError()
}

func (n node) IsExtra() bool {
	return n.raw.IsExtra()
}

func (n node) Parent() syntax.Node {
	return wrap(n.raw.Parent())
}

func (n node) FirstChild() syntax.Node {
	if n.raw.ChildCount() == 0 {
		return nil
	}
	return wrap(n.raw.Child(0))
}

func (n node) NextSibling() syntax.Node {
	return wrap(n.raw.NextSibling())
}

type Tree struct {
	raw *tree_sitter.Tree
}

var _ syntax.Tree = &Tree{}

func (tree *Tree) RootNode() syntax.Node {
	return wrap(tree.raw.RootNode())
}

func (tree *Tree) Edit(edit syntax.InputEdit) {
	tree.raw.Edit(&tree_sitter.InputEdit{
		StartByte:      uint(edit.StartByte),
		OldEndByte:     uint(edit.OldEndByte),
		NewEndByte:     uint(edit.NewEndByte),
		StartPosition:  point(edit.StartPosition),
		OldEndPosition: point(edit.OldEndPosition),
		NewEndPosition: point(edit.NewEndPosition),
	})
}

func (tree *Tree) Close() {
	tree.raw.Close()
}

func point(p syntax.Point) tree_sitter.Point {
	return tree_sitter.Point{Row: uint(p.Row), Column: uint(p.Column)}
}

// Parser serializes access to a tree-sitter parser, which is not safe for
// concurrent use.
type Parser struct {
	mutex sync.Mutex
	raw   *tree_sitter.Parser
}

var _ syntax.Parser = &Parser{}

func NewParser(lang Language) (*Parser, error) {
	raw := tree_sitter.NewParser()
	err := raw.SetLanguage(lang.raw)
	if err != nil {
		raw.Close()
		return nil, fmt.Errorf("failed to set parser language: %w", err)
	}
	return &Parser{raw: raw}, nil
}

func (parser *Parser) Parse(
	ctx context.Context,
	src []byte,
	old syntax.Tree,
) (
	syntax.Tree,
	error,
) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	var oldTree *tree_sitter.Tree
	if old != nil {
		tree, ok := old.(*Tree)
		if !ok {
			return nil, fmt.Errorf("unexpected tree type %T", old)
		}
		oldTree = tree.raw
	}

	parser.mutex.Lock()
	defer parser.mutex.Unlock()

	raw := parser.raw.Parse(src, oldTree)
	if raw == nil {
		return nil, fmt.Errorf("parse aborted")
	}
	return &Tree{raw: raw}, nil
}

func (parser *Parser) Close() {
	parser.mutex.Lock()
	defer parser.mutex.Unlock()
	parser.raw.Close()
}
