package dl

import (
	"github.com/pattyshack/ddlog-lsp/syntax"
)

// Validator checks a tree against the grammar without collecting anything.
type Validator struct {
	*Base
}

func NewValidator(g *Grammar, root syntax.Node) *Validator {
	validator := &Validator{}
	validator.Base = NewBase(validator, g, root)
	return validator
}

// Validate returns the first syntax error in the tree rooted at root, or
// nil.
func Validate(g *Grammar, root syntax.Node) error {
	return NewValidator(g, root).Visit()
}
