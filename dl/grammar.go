// Package dl validates syntax trees of ddlog programs (.dl files).
package dl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/rule"
	"github.com/pattyshack/ddlog-lsp/syntax"
)

//go:generate go run ../cmd/gen-kinds -grammar ddlog.dl -package dl -in node-types.json -entries ROOT,annotated_item -extras comment_line,comment_block

// Kinds the walker skips wherever they appear.
var ExtraKinds = []string{"comment_line", "comment_block"}

type Rule = rule.Rule[Visitor]

// Grammar is the resolved registry plus the rule table of every kind.  It
// is immutable once loaded and may be shared by any number of visitors.
type Grammar struct {
	*Registry

	lang   syntax.Language
	extras []uint16

	visits map[uint16]Rule // dispatch through the visitor's Visit<Kind>
	rules  map[uint16]Rule // default Visit<Kind> bodies
}

func Load(lang syntax.Language) (*Grammar, error) {
	registry, err := NewRegistry(lang)
	if err != nil {
		return nil, err
	}

	g := &Grammar{
		Registry: registry,
		lang:     lang,
		extras: []uint16{
			registry.Kinds.CommentLine,
			registry.Kinds.CommentBlock,
		},
		visits: visitMethods(&registry.Kinds),
		rules:  map[uint16]Rule{},
	}
	g.defineRules()

	missing := []string{}
	for kind := range g.visits {
		if g.rules[kind] == nil {
			missing = append(missing, grammar.KindName(lang, kind))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf(
			"%s: no rule defined for %s",
			grammar.DL,
			strings.Join(missing, ", "))
	}

	return g, nil
}

func MustLoad(lang syntax.Language) *Grammar {
	g, err := Load(lang)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grammar) Language() syntax.Language {
	return g.lang
}

func (g *Grammar) Extras() []uint16 {
	return g.extras
}

// Rule returns the default rule of the given kind, or nil.
func (g *Grammar) Rule(kind uint16) Rule {
	return g.rules[kind]
}

// visit returns a rule that validates kind through the visitor, so that
// overridden Visit<Kind> methods take effect.
func (g *Grammar) visit(kind uint16) Rule {
	return g.visits[kind]
}

// either is a choice between named kinds, each validated through the
// visitor.
func (g *Grammar) either(kinds ...uint16) Rule {
	alts := make([]rule.Alt[Visitor], 0, len(kinds))
	for _, kind := range kinds {
		alts = append(alts, rule.Alt[Visitor]{Kind: kind, Rule: g.visit(kind)})
	}
	return rule.Choice(alts...)
}

func (g *Grammar) define(kind uint16, body Rule) {
	g.rules[kind] = rule.Node(kind, body)
}
