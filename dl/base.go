package dl

import (
	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/syntax"
	"github.com/pattyshack/ddlog-lsp/walker"
)

// Base implements every Visit<Kind> method with the grammar's default
// rule.  Visitors embed Base and override the methods they care about;
// child visits are dispatched through self, so overrides apply at any
// depth.
type Base struct {
	self    Visitor
	grammar *Grammar
	walker  *walker.NodeWalker
}

// NewBase returns a base visitor over the subtree rooted at root.
func NewBase(self Visitor, g *Grammar, root syntax.Node) *Base {
	w := walker.New(grammar.DL, g.lang, root, g.extras...)
	w.Enter()

	return &Base{
		self:    self,
		grammar: g,
		walker:  w,
	}
}

func (base *Base) Walker() *walker.NodeWalker {
	return base.walker
}

func (base *Base) Grammar() *Grammar {
	return base.grammar
}
