package dat

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

func opt(r Rule) Rule {
	return rule.Optional(r)
}

func many(r Rule) Rule {
	return rule.Repeat(r)
}

func eof(r Rule) Rule {
	return rule.Eof(r)
}

func list(open uint16, sep uint16, close uint16, item Rule) Rule {
	return rule.List(open, sep, close, item)
}

func (g *Grammar) defineRules() {
	g.defineCommands()
	g.defineUpdates()
	g.defineRecords()
	g.defineNames()
}

// terminated is a command keyword, its arguments, and the closing ';'.
func (g *Grammar) terminated(keyword uint16, args ...Rule) Rule {
	rules := append([]Rule{tok(keyword)}, args...)
	rules = append(rules, tok(g.Symbols.Semicolon))
	return seq(rules...)
}

func (g *Grammar) defineCommands() {
	k := &g.Kinds
	kw := &g.Keywords
	s := &g.Symbols
	v := g.visit

	g.define(k.Root, eof(v(k.Command)))

	g.define(
		k.Command,
		g.either(
			k.Clear,
			k.Commit,
			k.Dump,
			k.DumpIndex,
			k.Echo,
			k.Exit,
			k.LogLevel,
			k.Profile,
			k.QueryIndex,
			k.Rollback,
			k.Sleep,
			k.Start,
			k.Timestamp,
			k.Updates))

	g.define(k.Clear, g.terminated(kw.Clear, v(k.NameRel)))
	g.define(k.Commit, g.terminated(kw.Commit, opt(tok(kw.DumpChanges))))
	g.define(k.Dump, g.terminated(kw.Dump, opt(v(k.NameRel))))
	g.define(k.DumpIndex, g.terminated(kw.DumpIndex, v(k.NameIndex)))
	g.define(k.Echo, g.terminated(kw.Echo, opt(v(k.EchoText))))
	g.define(k.Exit, g.terminated(kw.Exit))
	g.define(k.LogLevel, g.terminated(kw.LogLevel, v(k.LitNumDec)))

	g.define(
		k.Profile,
		g.terminated(
			kw.Profile,
			opt(seq(tok(kw.Cpu), oneOf(kw.On, kw.Off)))))

	g.define(
		k.QueryIndex,
		g.terminated(
			kw.QueryIndex,
			v(k.NameIndex),
			list(s.LParen, s.Comma, s.RParen, v(k.Record))))

	g.define(k.Rollback, g.terminated(kw.Rollback))
	g.define(k.Sleep, g.terminated(kw.Sleep, v(k.LitNumDec)))
	g.define(k.Start, g.terminated(kw.Start))
	g.define(k.Timestamp, g.terminated(kw.Timestamp))
}

func (g *Grammar) defineUpdates() {
	k := &g.Kinds
	kw := &g.Keywords
	s := &g.Symbols
	v := g.visit

	g.define(
		k.Updates,
		seq(
			v(k.Update),
			many(seq(tok(s.Comma), v(k.Update))),
			v(k.UpdatesEnd)))

	g.define(k.UpdatesEnd, tok(s.Semicolon))

	g.define(
		k.Update,
		g.either(k.Delete, k.DeleteKey, k.Insert, k.InsertOrUpdate, k.Modify))

	g.define(k.Delete, seq(tok(kw.Delete), v(k.Atom)))
	g.define(k.DeleteKey, seq(tok(kw.DeleteKey), v(k.NameRel), v(k.Record)))
	g.define(k.Insert, seq(tok(kw.Insert), v(k.Atom)))
	g.define(k.InsertOrUpdate, seq(tok(kw.InsertOrUpdate), v(k.Atom)))

	g.define(
		k.Modify,
		seq(
			tok(kw.Modify),
			v(k.NameRel),
			v(k.Record),
			tok(s.LArrow),
			v(k.Record)))

	g.define(k.Atom, g.either(k.AtomRec, k.AtomPos, k.AtomElem))

	g.define(
		k.AtomPos,
		seq(v(k.NameRel), list(s.LParen, s.Comma, s.RParen, v(k.Record))))

	g.define(
		k.AtomRec,
		seq(v(k.NameRel), list(s.LParen, s.Comma, s.RParen, v(k.Field))))

	g.define(
		k.AtomElem,
		seq(v(k.NameRel), tok(s.LBracket), v(k.Record), tok(s.RBracket)))

	g.define(
		k.Field,
		seq(tok(s.Dot), v(k.NameField), tok(s.Eq), v(k.Record)))
}

func (g *Grammar) defineRecords() {
	k := &g.Kinds
	kw := &g.Keywords
	s := &g.Symbols
	v := g.visit

	g.define(
		k.Record,
		g.either(
			k.LitBool,
			k.LitString,
			k.LitSerialized,
			k.RecordTuple,
			k.LitVec,
			k.LitMap,
			k.RecordStruct,
			k.RecordNamed,
			k.LitNum))

	g.define(k.RecordTuple, list(s.LParen, s.Comma, s.RParen, v(k.Record)))

	g.define(
		k.RecordStruct,
		seq(
			v(k.NameCons),
			opt(list(s.LBrace, s.Comma, s.RBrace, v(k.Record)))))

	g.define(
		k.RecordNamed,
		seq(v(k.NameCons), list(s.LBrace, s.Comma, s.RBrace, v(k.Field))))

	g.define(k.LitBool, oneOf(kw.True, kw.False))

	g.define(
		k.LitString,
		seq(
			tok(s.Quote),
			many(g.either(k.StringFragment, k.EscapeSequence)),
			tok(s.Quote)))

	g.define(
		k.LitSerialized,
		seq(tok(s.At), v(k.SerdeEncoding), v(k.LitString)))

	// json is the only encoding the runtime understands.
	g.define(k.SerdeEncoding, tok(kw.Json))

	g.define(k.LitVec, list(s.LBracket, s.Comma, s.RBracket, v(k.Record)))

	g.define(
		k.LitMap,
		list(
			s.LBrace,
			s.Comma,
			s.RBrace,
			seq(v(k.Record), tok(s.Arrow), v(k.Record))))

	g.define(
		k.LitNum,
		seq(
			opt(tok(s.Dash)),
			g.either(
				k.LitNumDec,
				k.LitNumFloat,
				k.LitNumHex,
				k.LitNumBin,
				k.LitNumOct)))
}

func (g *Grammar) defineNames() {
	k := &g.Kinds
	v := g.visit

	g.define(k.NameRel, v(k.IdentUpperScoped))
	g.define(k.NameIndex, v(k.IdentScoped))
	g.define(k.NameCons, v(k.IdentUpperScoped))
	g.define(k.NameField, v(k.IdentLower))

	leaves := []uint16{
		k.IdentLower,
		k.IdentUpperScoped,
		k.IdentScoped,
		k.LitNumDec,
		k.LitNumFloat,
		k.LitNumHex,
		k.LitNumBin,
		k.LitNumOct,
		k.EscapeSequence,
		k.StringFragment,
		k.EchoText,
	}
	for _, kind := range leaves {
		g.define(kind, nil)
	}
}
