package dl

import (
	"github.com/pattyshack/ddlog-lsp/symbol"
	"github.com/pattyshack/ddlog-lsp/syntax"
	"github.com/pattyshack/ddlog-lsp/walker"
)

// IdentifierRecorder validates like Validator and records every name it
// passes on the way.
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

func (recorder *IdentifierRecorder) record(
	move walker.Move,
	kind symbol.Kind,
	declares func(uint16) bool,
	visit func(walker.Move) error,
) error {
	return recorder.Record(recorder.Walker(), move, kind, declares, visit)
}

func (recorder *IdentifierRecorder) VisitNameType(move walker.Move) error {
	k := &recorder.Grammar().Kinds
	return recorder.record(
		move,
		symbol.Type,
		symbol.KindSet(k.TypedefNormal, k.TypedefExtern),
		recorder.Base.VisitNameType)
}

func (recorder *IdentifierRecorder) VisitNameVarType(move walker.Move) error {
	k := &recorder.Grammar().Kinds
	return recorder.record(
		move,
		symbol.TypeVariable,
		symbol.KindSet(k.TypedefNormal, k.TypedefExtern),
		recorder.Base.VisitNameVarType)
}

func (recorder *IdentifierRecorder) VisitNameRel(move walker.Move) error {
	k := &recorder.Grammar().Kinds
	return recorder.record(
		move,
		symbol.Relation,
		symbol.KindSet(k.RelArgs, k.RelElem),
		recorder.Base.VisitNameRel)
}

func (recorder *IdentifierRecorder) VisitNameFunc(move walker.Move) error {
	k := &recorder.Grammar().Kinds
	return recorder.record(
		move,
		symbol.Function,
		symbol.KindSet(k.FunctionNormal, k.FunctionExtern),
		recorder.Base.VisitNameFunc)
}

func (recorder *IdentifierRecorder) VisitNameTrans(move walker.Move) error {
	k := &recorder.Grammar().Kinds
	return recorder.record(
		move,
		symbol.Transformer,
		symbol.KindSet(k.Transformer),
		recorder.Base.VisitNameTrans)
}

func (recorder *IdentifierRecorder) VisitNameIndex(move walker.Move) error {
	k := &recorder.Grammar().Kinds
	return recorder.record(
		move,
		symbol.Index,
		symbol.KindSet(k.Index),
		recorder.Base.VisitNameIndex)
}

func (recorder *IdentifierRecorder) VisitNameCons(move walker.Move) error {
	k := &recorder.Grammar().Kinds
	return recorder.record(
		move,
		symbol.Constructor,
		symbol.KindSet(k.ConsRec, k.ConsPos),
		recorder.Base.VisitNameCons)
}

func (recorder *IdentifierRecorder) VisitNameField(move walker.Move) error {
	k := &recorder.Grammar().Kinds
	return recorder.record(
		move,
		symbol.Field,
		symbol.KindSet(k.Field),
		recorder.Base.VisitNameField)
}

func (recorder *IdentifierRecorder) VisitNameArg(move walker.Move) error {
	k := &recorder.Grammar().Kinds
	return recorder.record(
		move,
		symbol.Argument,
		symbol.KindSet(k.Arg, k.ArgOptType),
		recorder.Base.VisitNameArg)
}

func (recorder *IdentifierRecorder) VisitNameVarDecl(move walker.Move) error {
	return recorder.record(
		move,
		symbol.Variable,
		symbol.Always,
		recorder.Base.VisitNameVarDecl)
}

func (recorder *IdentifierRecorder) VisitNameVarTerm(move walker.Move) error {
	return recorder.record(
		move,
		symbol.Variable,
		nil,
		recorder.Base.VisitNameVarTerm)
}
