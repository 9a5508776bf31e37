package grammar

import (
	"errors"
	"fmt"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/ddlog-lsp/syntax"
)

// Resolver looks up the numeric ids of symbolic names.  Every unknown name
// is remembered so that a drifted parser is reported in full, not one name
// at a time.
type Resolver struct {
	*parseutil.Emitter

	grammar Grammar
	lang    syntax.Language
}

func NewResolver(grammar Grammar, lang syntax.Language) *Resolver {
	return &Resolver{
		Emitter: &parseutil.Emitter{},
		grammar: grammar,
		lang:    lang,
	}
}

func (resolver *Resolver) Kind(name string) uint16 {
	return resolver.id(name, true, "kind")
}

func (resolver *Resolver) Keyword(name string) uint16 {
	return resolver.id(name, false, "keyword")
}

func (resolver *Resolver) Symbol(name string) uint16 {
	return resolver.id(name, false, "symbol")
}

func (resolver *Resolver) Field(name string) uint16 {
	id := resolver.lang.FieldIdForName(name)
	if id == 0 {
		resolver.EmitErrors(
			fmt.Errorf("%s: unknown field %q", resolver.grammar, name))
	}
	return id
}

func (resolver *Resolver) id(name string, named bool, namespace string) uint16 {
	id := resolver.lang.IdForNodeKind(name, named)
	if id == 0 {
		resolver.EmitErrors(
			fmt.Errorf("%s: unknown %s %q", resolver.grammar, namespace, name))
	}
	return id
}

func (resolver *Resolver) Err() error {
	if !resolver.HasErrors() {
		return nil
	}
	return errors.Join(resolver.Errors()...)
}

// KindName returns the parser's name for a kind id.
func KindName(lang syntax.Language, id uint16) string {
	if id == syntax.ErrorKindId {
		return "ERROR"
	}
	name := lang.NodeKindForId(id)
	if name == "" {
		return fmt.Sprintf("kind(%d)", id)
	}
	return name
}
