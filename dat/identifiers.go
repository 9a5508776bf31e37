package dat

import (
	"github.com/pattyshack/ddlog-lsp/symbol"
	"github.com/pattyshack/ddlog-lsp/syntax"
	"github.com/pattyshack/ddlog-lsp/walker"
)

// IdentifierRecorder validates like Validator and records the relations,
// indexes, constructors and fields a command script refers to.
type IdentifierRecorder struct {
	*Base
	*symbol.Recorder
}

var _ Visitor = &IdentifierRecorder{}

func NewIdentifierRecorder(
	g *Grammar,
	root syntax.Node,
	source []byte,
) *IdentifierRecorder {
	recorder := &IdentifierRecorder{
		Recorder: symbol.NewRecorder(source),
	}
	recorder.Base = NewBase(recorder, g, root)
	return recorder
}

func (recorder *IdentifierRecorder) VisitNameRel(move walker.Move) error {
	return recorder.Record(
		recorder.Walker(),
		move,
		symbol.Relation,
		nil,
		recorder.Base.VisitNameRel)
}

func (recorder *IdentifierRecorder) VisitNameIndex(move walker.Move) error {
	return recorder.Record(
		recorder.Walker(),
		move,
		symbol.Index,
		nil,
		recorder.Base.VisitNameIndex)
}

func (recorder *IdentifierRecorder) VisitNameCons(move walker.Move) error {
	return recorder.Record(
		recorder.Walker(),
		move,
		symbol.Constructor,
		nil,
		recorder.Base.VisitNameCons)
}

func (recorder *IdentifierRecorder) VisitNameField(move walker.Move) error {
	return recorder.Record(
		recorder.Walker(),
		move,
		symbol.Field,
		nil,
		recorder.Base.VisitNameField)
}
