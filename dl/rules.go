package dl

import (
	"github.com/pattyshack/ddlog-lsp/rule"
)

func tok(kind uint16) Rule {
	return rule.Token[Visitor](kind)
}

func oneOf(kinds ...uint16) Rule {
	return rule.OneOf[Visitor](kinds...)
}

func seq(rules ...Rule) Rule {
	return rule.Seq(rules...)
}

func choice(alts ...rule.Alt[Visitor]) Rule {
	return rule.Choice(alts...)
}

func alt(kind uint16, r Rule) rule.Alt[Visitor] {
	return rule.Alt[Visitor]{Kind: kind, Rule: r}
}

func opt(r Rule) Rule {
	return rule.Optional(r)
}

func many(r Rule) Rule {
	return rule.Repeat(r)
}

func many1(r Rule) Rule {
	return rule.Repeat1(r)
}

func eof(r Rule) Rule {
	return rule.Eof(r)
}

func list(open uint16, sep uint16, close uint16, item Rule) Rule {
	return rule.List(open, sep, close, item)
}

func (g *Grammar) defineRules() {
	g.defineItems()
	g.defineDeclarations()
	g.defineTypes()
	g.defineExpressions()
	g.defineLiterals()
	g.definePatterns()
	g.defineStatements()
	g.defineNames()
}

// tuple is a parenthesized, comma separated list.
func (g *Grammar) tuple(item Rule) Rule {
	return list(g.Symbols.LParen, g.Symbols.Comma, g.Symbols.RParen, item)
}

// atomPrefix is the (name_var_term 'in')? '&'? name_rel head shared by atoms.
func (g *Grammar) atomPrefix() Rule {
	k := &g.Kinds
	kw := &g.Keywords
	s := &g.Symbols

	return seq(
		opt(seq(g.visit(k.NameVarTerm), tok(kw.In))),
		opt(tok(s.Amp)),
		g.visit(k.NameRel))
}

func (g *Grammar) defineItems() {
	k := &g.Kinds
	s := &g.Symbols
	v := g.visit

	g.define(k.Root, eof(v(k.AnnotatedItem)))

	g.define(k.AnnotatedItem, seq(opt(v(k.Attributes)), v(k.Item)))

	g.define(
		k.Attributes,
		many1(
			seq(
				tok(s.HashLBracket),
				v(k.Attribute),
				many(seq(tok(s.Comma), v(k.Attribute))),
				tok(s.RBracket))))

	g.define(k.Attribute, seq(v(k.Name), opt(seq(tok(s.Eq), v(k.Exp)))))

	g.define(
		k.Item,
		g.either(
			k.StatementFor,
			k.Apply,
			k.Import,
			k.Function,
			k.Index,
			k.Rel,
			k.Rule,
			k.Transformer,
			k.Typedef))
}

func (g *Grammar) defineDeclarations() {
	k := &g.Kinds
	kw := &g.Keywords
	s := &g.Symbols
	v := g.visit

	g.define(
		k.Apply,
		seq(
			tok(kw.Apply),
			v(k.NameTrans),
			g.tuple(g.either(k.NameFunc, k.NameRel)),
			tok(s.Arrow),
			g.tuple(v(k.NameRel))))

	g.define(
		k.Import,
		seq(
			tok(kw.Import),
			v(k.ModulePath),
			opt(seq(tok(kw.As), v(k.ModuleAlias)))))

	g.define(
		k.ModulePath,
		seq(v(k.Ident), many(seq(tok(s.ColonColon), v(k.Ident)))))

	g.define(k.ModuleAlias, v(k.Ident))

	g.define(k.Ident, g.either(k.IdentLower, k.IdentUpper))

	g.define(k.Function, g.either(k.FunctionNormal, k.FunctionExtern))

	returnType := opt(seq(tok(s.Colon), v(k.TypeAtom)))

	g.define(
		k.FunctionNormal,
		seq(
			tok(kw.Function),
			v(k.NameFunc),
			g.tuple(v(k.Arg)),
			returnType,
			choice(
				alt(s.Eq, seq(tok(s.Eq), v(k.Exp))),
				alt(s.LBrace, seq(tok(s.LBrace), opt(v(k.Exp)), tok(s.RBrace))))))

	g.define(
		k.FunctionExtern,
		seq(
			tok(kw.Extern),
			tok(kw.Function),
			v(k.NameFunc),
			g.tuple(v(k.Arg)),
			returnType))

	g.define(
		k.Arg,
		seq(v(k.NameArg), tok(s.Colon), opt(tok(kw.Mut)), v(k.TypeAtom)))

	g.define(
		k.ArgOptType,
		seq(
			v(k.NameArg),
			opt(seq(tok(s.Colon), opt(tok(kw.Mut)), v(k.TypeAtom)))))

	g.define(k.ArgTrans, seq(v(k.NameTrans), tok(s.Colon), v(k.TypeTrans)))

	g.define(
		k.Index,
		seq(
			tok(kw.Index),
			v(k.NameIndex),
			g.tuple(v(k.Arg)),
			tok(kw.On),
			v(k.Atom)))

	g.define(k.Rel, g.either(k.RelArgs, k.RelElem))

	relHead := seq(
		opt(v(k.RelRole)),
		v(k.RelSemantics),
		opt(tok(s.Amp)),
		v(k.NameRel))

	g.define(
		k.RelArgs,
		seq(relHead, g.tuple(v(k.Arg)), opt(v(k.KeyPrimary))))

	g.define(
		k.RelElem,
		seq(
			relHead,
			tok(s.LBracket),
			v(k.TypeAtom),
			tok(s.RBracket),
			opt(v(k.KeyPrimary))))

	g.define(k.RelRole, oneOf(kw.Input, kw.Internal, kw.Output))

	g.define(k.RelSemantics, oneOf(kw.Relation, kw.Stream, kw.Multiset))

	g.define(
		k.KeyPrimary,
		seq(
			tok(kw.Primary),
			tok(kw.Key),
			tok(s.LParen),
			v(k.NameVarTerm),
			tok(s.RParen),
			v(k.Exp)))

	g.define(
		k.Rule,
		seq(
			v(k.Atom),
			many(seq(tok(s.Comma), v(k.Atom))),
			opt(
				seq(
					tok(s.ColonDash),
					v(k.Rhs),
					many(seq(tok(s.Comma), v(k.Rhs))))),
			v(k.RuleEnd)))

	g.define(k.RuleEnd, tok(s.Dot))

	g.define(
		k.Rhs,
		g.either(
			k.RhsInspect,
			k.Atom,
			k.RhsAtomNeg,
			k.Exp,
			k.RhsFlatMap,
			k.RhsGrouping))

	g.define(k.RhsInspect, seq(tok(kw.Inspect), v(k.Exp)))

	g.define(k.RhsAtomNeg, seq(tok(kw.Not), v(k.Atom)))

	g.define(
		k.RhsFlatMap,
		seq(
			tok(kw.Var),
			v(k.NameVarTerm),
			tok(s.Eq),
			tok(kw.FlatMap),
			tok(s.LParen),
			v(k.Exp),
			tok(s.RParen)))

	g.define(
		k.RhsGrouping,
		seq(
			tok(kw.Var),
			v(k.NameVarTerm),
			tok(s.Eq),
			v(k.Exp),
			tok(s.Dot),
			tok(kw.GroupBy),
			tok(s.LParen),
			v(k.Exp),
			tok(s.RParen)))

	g.define(k.Atom, g.either(k.AtomRec, k.AtomPos, k.AtomElem))

	g.define(k.AtomPos, seq(g.atomPrefix(), opt(g.tuple(v(k.Exp)))))

	g.define(
		k.AtomRec,
		seq(
			g.atomPrefix(),
			g.tuple(seq(tok(s.Dot), v(k.NameArg), tok(s.Eq), v(k.Exp)))))

	g.define(
		k.AtomElem,
		seq(g.atomPrefix(), tok(s.LBracket), v(k.Exp), tok(s.RBracket)))

	g.define(
		k.Transformer,
		seq(
			tok(kw.Extern),
			tok(kw.Transformer),
			v(k.NameTrans),
			g.tuple(v(k.ArgTrans)),
			tok(s.Arrow),
			g.tuple(v(k.ArgTrans))))

	g.define(k.Typedef, g.either(k.TypedefNormal, k.TypedefExtern))

	typeParams := opt(list(s.Lt, s.Comma, s.Gt, v(k.NameVarType)))

	g.define(
		k.TypedefNormal,
		seq(
			tok(kw.Typedef),
			v(k.NameType),
			typeParams,
			tok(s.Eq),
			v(k.Type)))

	g.define(
		k.TypedefExtern,
		seq(tok(kw.Extern), tok(kw.Type), v(k.NameType), typeParams))
}

func (g *Grammar) defineTypes() {
	k := &g.Kinds
	kw := &g.Keywords
	s := &g.Symbols
	v := g.visit

	g.define(k.TypeTrans, g.either(k.TypeTransFun, k.TypeTransRel))

	g.define(
		k.TypeTransFun,
		seq(
			tok(kw.Function),
			g.tuple(v(k.ArgOptType)),
			tok(s.Colon),
			v(k.TypeAtom)))

	g.define(
		k.TypeTransRel,
		seq(tok(kw.Relation), tok(s.LBracket), v(k.TypeAtom), tok(s.RBracket)))

	atoms := []uint16{
		k.TypeBit,
		k.TypeSigned,
		k.TypeBigint,
		k.TypeDouble,
		k.TypeFloat,
		k.TypeString,
		k.TypeBool,
		k.TypeUser,
		k.TypeVar,
		k.TypeFun,
		k.TypeTuple,
	}

	g.define(k.Type, g.either(append([]uint16{k.TypeUnion}, atoms...)...))
	g.define(k.TypeAtom, g.either(atoms...))

	// The width is a one way choice so that a bad width reports the
	// expected literal kind.
	width := g.either(k.LitNumDec)

	g.define(k.TypeBit, seq(tok(kw.Bit), tok(s.Lt), width, tok(s.Gt)))
	g.define(k.TypeSigned, seq(tok(kw.Signed), tok(s.Lt), width, tok(s.Gt)))
	g.define(k.TypeBigint, tok(kw.Bigint))
	g.define(k.TypeDouble, tok(kw.Double))
	g.define(k.TypeFloat, tok(kw.Float))
	g.define(k.TypeString, tok(kw.String))
	g.define(k.TypeBool, tok(kw.Bool))

	g.define(
		k.TypeUser,
		seq(v(k.NameType), opt(list(s.Lt, s.Comma, s.Gt, v(k.Type)))))

	g.define(k.TypeVar, v(k.NameVarType))

	funArg := seq(opt(tok(kw.Mut)), v(k.TypeAtom))
	g.define(
		k.TypeFun,
		choice(
			alt(
				kw.Function,
				seq(
					tok(kw.Function),
					g.tuple(funArg),
					tok(s.Colon),
					v(k.TypeAtom))),
			alt(
				s.Pipe,
				seq(
					list(s.Pipe, s.Comma, s.Pipe, funArg),
					tok(s.Colon),
					v(k.TypeAtom)))))

	g.define(k.TypeTuple, g.tuple(v(k.TypeAtom)))

	g.define(
		k.TypeUnion,
		seq(v(k.Cons), many(seq(tok(s.Pipe), v(k.Cons)))))

	g.define(k.Cons, g.either(k.ConsRec, k.ConsPos))

	g.define(
		k.ConsRec,
		seq(
			opt(v(k.Attributes)),
			v(k.NameCons),
			list(s.LBrace, s.Comma, s.RBrace, v(k.Field))))

	g.define(k.ConsPos, seq(opt(v(k.Attributes)), v(k.NameCons)))

	g.define(
		k.Field,
		seq(
			opt(v(k.Attributes)),
			v(k.NameField),
			tok(s.Colon),
			v(k.TypeAtom)))

	g.define(
		k.ConsArg,
		seq(
			v(k.Exp),
			many(seq(tok(s.Comma), v(k.Exp))),
			opt(tok(s.Comma))))
}

func (g *Grammar) defineExpressions() {
	k := &g.Kinds
	kw := &g.Keywords
	s := &g.Symbols
	v := g.visit

	g.define(
		k.Exp,
		g.either(
			k.ExpAdd,
			k.ExpAssign,
			k.ExpBitAnd,
			k.ExpBitNeg,
			k.ExpBitOr,
			k.ExpBitSlice,
			k.ExpBitXor,
			k.ExpBlock,
			k.ExpBreak,
			k.ExpCast,
			k.ExpCat,
			k.ExpCond,
			k.ExpConsPos,
			k.ExpConsRec,
			k.ExpContinue,
			k.ExpDeclVar,
			k.ExpDiv,
			k.ExpEq,
			k.ExpField,
			k.ExpFor,
			k.ExpFunCall,
			k.ExpFunCallDot,
			k.ExpGt,
			k.ExpGteq,
			k.ExpImplies,
			k.ExpLambda,
			k.ExpLand,
			k.ExpLit,
			k.ExpLor,
			k.ExpLt,
			k.ExpLteq,
			k.ExpMatch,
			k.ExpMul,
			k.ExpNeg,
			k.ExpNeq,
			k.ExpNot,
			k.ExpProj,
			k.ExpRange,
			k.ExpRef,
			k.ExpRem,
			k.ExpReturn,
			k.ExpSeq,
			k.ExpShl,
			k.ExpShr,
			k.ExpSub,
			k.ExpTry,
			k.ExpTuple,
			k.ExpType,
			k.ExpWild,
			k.NameVarTerm))

	binary := []struct {
		kind uint16
		op   uint16
	}{
		{k.ExpAdd, s.Plus},
		{k.ExpAssign, s.Eq},
		{k.ExpBitAnd, s.Amp},
		{k.ExpBitOr, s.Pipe},
		{k.ExpBitXor, s.Caret},
		{k.ExpCat, s.PlusPlus},
		{k.ExpDiv, s.Slash},
		{k.ExpEq, s.EqEq},
		{k.ExpGt, s.Gt},
		{k.ExpGteq, s.GtEq},
		{k.ExpImplies, s.FatArrow},
		{k.ExpLand, kw.And},
		{k.ExpLor, kw.Or},
		{k.ExpLt, s.Lt},
		{k.ExpLteq, s.LtEq},
		{k.ExpMul, s.Star},
		{k.ExpNeq, s.BangEq},
		{k.ExpRange, s.DotDot},
		{k.ExpRem, s.Percent},
		{k.ExpSeq, s.Semicolon},
		{k.ExpShl, s.LtLt},
		{k.ExpShr, s.GtGt},
		{k.ExpSub, s.Dash},
	}
	for _, op := range binary {
		g.define(op.kind, seq(v(k.Exp), tok(op.op), v(k.Exp)))
	}

	g.define(k.ExpBitNeg, seq(tok(s.Tilde), v(k.Exp)))
	g.define(k.ExpNeg, seq(tok(s.Dash), v(k.Exp)))
	g.define(k.ExpNot, seq(tok(kw.Not), v(k.Exp)))
	g.define(k.ExpRef, seq(tok(s.Amp), v(k.Exp)))
	g.define(k.ExpTry, seq(v(k.Exp), tok(s.Question)))

	g.define(
		k.ExpBitSlice,
		seq(
			v(k.Exp),
			tok(s.LBracket),
			v(k.LitNumDec),
			tok(s.Colon),
			v(k.LitNumDec),
			tok(s.RBracket)))

	g.define(k.ExpBlock, seq(tok(s.LBrace), opt(v(k.Exp)), tok(s.RBrace)))
	g.define(k.ExpBreak, tok(kw.Break))
	g.define(k.ExpContinue, tok(kw.Continue))
	g.define(k.ExpWild, tok(s.Underscore))

	g.define(k.ExpCast, seq(v(k.Exp), tok(kw.As), v(k.TypeAtom)))

	g.define(
		k.ExpCond,
		seq(
			tok(kw.If),
			v(k.Exp),
			v(k.Exp),
			opt(seq(tok(kw.Else), v(k.Exp)))))

	g.define(
		k.ExpConsPos,
		seq(
			v(k.NameCons),
			opt(seq(tok(s.LBrace), opt(v(k.ConsArg)), tok(s.RBrace)))))

	g.define(
		k.ExpConsRec,
		seq(
			v(k.NameCons),
			list(
				s.LBrace,
				s.Comma,
				s.RBrace,
				seq(tok(s.Dot), v(k.NameField), tok(s.Eq), v(k.Exp)))))

	g.define(k.ExpDeclVar, seq(tok(kw.Var), v(k.NameVarDecl)))

	g.define(k.ExpField, seq(v(k.Exp), tok(s.Dot), v(k.NameField)))

	g.define(
		k.ExpFor,
		seq(
			tok(kw.For),
			tok(s.LParen),
			v(k.NameVarDecl),
			tok(kw.In),
			v(k.Exp),
			tok(s.RParen),
			v(k.Exp)))

	g.define(k.ExpFunCall, seq(v(k.NameFunc), g.tuple(v(k.Exp))))

	g.define(
		k.ExpFunCallDot,
		seq(v(k.Exp), tok(s.Dot), v(k.NameFunc), g.tuple(v(k.Exp))))

	lambdaType := opt(seq(tok(s.Colon), v(k.TypeAtom)))
	g.define(
		k.ExpLambda,
		choice(
			alt(
				kw.Function,
				seq(
					tok(kw.Function),
					g.tuple(v(k.ArgOptType)),
					lambdaType,
					v(k.Exp))),
			alt(
				s.Pipe,
				seq(
					list(s.Pipe, s.Comma, s.Pipe, v(k.ArgOptType)),
					lambdaType,
					v(k.Exp)))))

	g.define(k.ExpLit, v(k.Lit))

	g.define(
		k.ExpMatch,
		seq(
			tok(kw.Match),
			tok(s.LParen),
			v(k.Exp),
			tok(s.RParen),
			list(
				s.LBrace,
				s.Comma,
				s.RBrace,
				seq(v(k.Pat), tok(s.Arrow), v(k.Exp)))))

	g.define(k.ExpProj, seq(v(k.Exp), tok(s.Dot), v(k.ExpProjDigits)))

	g.define(k.ExpReturn, seq(tok(kw.Return), opt(v(k.Exp))))

	g.define(k.ExpTuple, g.tuple(v(k.Exp)))

	g.define(k.ExpType, seq(v(k.Exp), tok(s.Colon), v(k.TypeAtom)))
}

func (g *Grammar) defineLiterals() {
	k := &g.Kinds
	kw := &g.Keywords
	s := &g.Symbols
	v := g.visit

	g.define(
		k.Lit,
		g.either(k.LitBool, k.LitNum, k.LitMap, k.LitString, k.LitVec))

	g.define(k.LitBool, oneOf(kw.True, kw.False))

	g.define(
		k.LitMap,
		list(
			s.LBracket,
			s.Comma,
			s.RBracket,
			seq(v(k.Exp), tok(s.Arrow), v(k.Exp))))

	g.define(k.LitVec, list(s.LBracket, s.Comma, s.RBracket, v(k.Exp)))

	branches := []uint16{
		k.LitNumBranch0,
		k.LitNumBranch1,
		k.LitNumBranch2,
		k.LitNumBranch3,
		k.LitNumBranch4,
		k.LitNumBranch5,
		k.LitNumBranch6,
		k.LitNumBranch7,
		k.LitNumBranch8,
		k.LitNumBranch9,
		k.LitNumBranch10,
		k.LitNumBranch11,
		k.LitNumBranch12,
		k.LitNumBranch13,
		k.LitNumBranch14,
		k.LitNumBranch15,
		k.LitNumBranch16,
		k.LitNumBranch17,
		k.LitNumBranch18,
	}

	g.define(k.LitNum, g.either(branches...))

	g.define(
		branches[0],
		g.either(k.LitNumDec, k.LitNumFloat, k.LitNumHex))

	// Sized literals: <width>? <marker> <payload>, where the marker picks
	// the payload's base.
	sized := []struct {
		marker  uint16
		payload uint16
	}{
		{s.TickB, k.LitNumBin},
		{s.TickD, k.LitNumDec},
		{s.TickF, k.LitNumFloat},
		{s.TickH, k.LitNumHex},
		{s.TickO, k.LitNumOct},
		{s.TickSB, k.LitNumBin},
		{s.TickSD, k.LitNumDec},
		{s.TickSH, k.LitNumHex},
		{s.TickSO, k.LitNumOct},
	}
	for idx, lit := range sized {
		g.define(branches[1+idx], seq(tok(lit.marker), v(lit.payload)))
		g.define(
			branches[1+len(sized)+idx],
			seq(v(k.LitNumDec), tok(lit.marker), v(lit.payload)))
	}

	g.define(
		k.LitString,
		g.either(
			k.StringQuoted,
			k.StringQuotedEscaped,
			k.StringRaw,
			k.StringRawInterpolated))

	quotedPart := g.either(k.StringFragment, k.EscapeSequence, k.Interpolation)

	g.define(
		k.StringQuoted,
		seq(tok(s.Quote), many(quotedPart), tok(s.Quote)))

	g.define(
		k.StringQuotedEscaped,
		seq(tok(s.EQuote), many(quotedPart), tok(s.Quote)))

	g.define(
		k.StringRaw,
		seq(
			tok(s.LBracketPipe),
			opt(v(k.StringRawContent)),
			tok(s.PipeRBracket)))

	g.define(
		k.StringRawInterpolated,
		seq(
			tok(s.DollarLBracketPipe),
			many(g.either(k.StringRawContent, k.Interpolation)),
			tok(s.PipeRBracket)))

	g.define(
		k.Interpolation,
		seq(tok(s.DollarLBrace), v(k.Exp), tok(s.RBrace)))
}

func (g *Grammar) definePatterns() {
	k := &g.Kinds
	kw := &g.Keywords
	s := &g.Symbols
	v := g.visit

	g.define(
		k.Pat,
		g.either(
			k.PatCons,
			k.PatLit,
			k.PatRef,
			k.PatTermDeclVar,
			k.PatTuple,
			k.PatType,
			k.PatWild))

	g.define(k.PatCons, g.either(k.PatConsRec, k.PatConsPos))

	g.define(
		k.PatConsPos,
		seq(
			v(k.NameCons),
			opt(list(s.LBrace, s.Comma, s.RBrace, v(k.Pat)))))

	g.define(
		k.PatConsRec,
		seq(
			v(k.NameCons),
			list(
				s.LBrace,
				s.Comma,
				s.RBrace,
				seq(tok(s.Dot), v(k.NameField), tok(s.Eq), v(k.Pat)))))

	g.define(k.PatLit, v(k.Lit))
	g.define(k.PatRef, seq(tok(s.Amp), v(k.Pat)))
	g.define(k.PatTermDeclVar, seq(opt(tok(kw.Var)), v(k.NameVarDecl)))
	g.define(k.PatTuple, g.tuple(v(k.Pat)))
	g.define(k.PatType, seq(v(k.Pat), tok(s.Colon), v(k.TypeAtom)))
	g.define(k.PatWild, tok(s.Underscore))
}

func (g *Grammar) defineStatements() {
	k := &g.Kinds
	kw := &g.Keywords
	s := &g.Symbols
	v := g.visit

	g.define(
		k.Statement,
		g.either(
			k.StatementAssign,
			k.StatementBlock,
			k.StatementEmpty,
			k.StatementFor,
			k.StatementIf,
			k.StatementInsert,
			k.StatementMatch))

	g.define(
		k.StatementAssign,
		seq(
			v(k.Pat),
			tok(s.Eq),
			v(k.Exp),
			tok(kw.In),
			v(k.Statement)))

	g.define(
		k.StatementBlock,
		list(s.LBrace, s.Semicolon, s.RBrace, v(k.Statement)))

	g.define(k.StatementEmpty, tok(kw.Skip))

	g.define(
		k.StatementFor,
		seq(
			tok(kw.For),
			tok(s.LParen),
			v(k.Atom),
			opt(seq(tok(kw.If), v(k.Exp))),
			tok(s.RParen),
			v(k.Statement)))

	g.define(
		k.StatementIf,
		seq(
			tok(kw.If),
			tok(s.LParen),
			v(k.Exp),
			tok(s.RParen),
			v(k.Statement),
			opt(seq(tok(kw.Else), v(k.Statement)))))

	g.define(k.StatementInsert, v(k.Atom))

	g.define(
		k.StatementMatch,
		seq(
			tok(kw.Match),
			tok(s.LParen),
			v(k.Exp),
			tok(s.RParen),
			list(
				s.LBrace,
				s.Comma,
				s.RBrace,
				seq(v(k.Pat), tok(s.Arrow), v(k.Statement)))))
}

func (g *Grammar) defineNames() {
	k := &g.Kinds
	v := g.visit

	g.define(k.Name, g.either(k.IdentLower, k.IdentUpper))
	g.define(k.NameArg, v(k.IdentLower))
	g.define(k.NameCons, v(k.IdentUpperScoped))
	g.define(k.NameField, v(k.IdentLower))
	g.define(k.NameFunc, v(k.IdentLowerScoped))
	g.define(k.NameIndex, v(k.IdentScoped))
	g.define(k.NameRel, v(k.IdentUpperScoped))
	g.define(k.NameTrans, v(k.IdentScoped))
	g.define(k.NameType, g.either(k.IdentUpperScoped, k.IdentLowerScoped))
	g.define(k.NameVarDecl, v(k.IdentLower))
	g.define(k.NameVarTerm, v(k.IdentLowerScoped))

	leaves := []uint16{
		k.NameVarType,
		k.IdentLower,
		k.IdentUpper,
		k.IdentLowerScoped,
		k.IdentUpperScoped,
		k.IdentScoped,
		k.LitNumBin,
		k.LitNumDec,
		k.LitNumFloat,
		k.LitNumHex,
		k.LitNumOct,
		k.EscapeSequence,
		k.StringFragment,
		k.StringRawContent,
		k.ExpProjDigits,
	}
	for _, kind := range leaves {
		g.define(kind, nil)
	}
}
