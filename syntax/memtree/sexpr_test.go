package memtree

import (
	"testing"

	"github.com/pattyshack/ddlog-lsp/syntax"
)

func testLanguage() *Language {
	return NewLanguage(LanguageSpec{
		Named:     []string{"ROOT", "pair", "ident", "comment_line"},
		Anonymous: []string{"(", ")", ","},
		Fields:    []string{"identifier"},
		Extras:    []string{"comment_line"},
	})
}

func TestLanguageIds(t *testing.T) {
	lang := testLanguage()

	if lang.IdForNodeKind("ROOT", true) != 1 {
		t.Fatalf("expected ROOT to be kind 1")
	}
	if lang.IdForNodeKind("(", false) == 0 {
		t.Fatalf("expected anonymous kind for '('")
	}
	if lang.IdForNodeKind("(", true) != 0 {
		t.Fatalf("'(' is not a named kind")
	}
	if lang.IdForNodeKind("ERROR", true) != syntax.ErrorKindId {
		t.Fatalf("ERROR must map to the builtin error kind")
	}
	if lang.NodeKindForId(syntax.ErrorKindId) != "ERROR" {
		t.Fatalf("unexpected error kind name")
	}
	if lang.FieldIdForName("identifier") != 1 {
		t.Fatalf("unexpected field id")
	}
	if lang.FieldIdForName("nope") != 0 {
		t.Fatalf("unknown field must be 0")
	}
}

func TestParseRanges(t *testing.T) {
	lang := testLanguage()
	source := "(a,\n b) // done\n"

	tree, err := Parse(
		lang,
		source,
		`(ROOT (pair "(" ident:a "," ident:b ")") comment_line:"// done")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root := tree.Root()
	if root.Range().StartByte != 0 || root.Range().EndByte != uint32(len(source)) {
		t.Fatalf("root must span the source, got %s", root.Range())
	}

	pair := root.Children()[0]
	if pair.Range().StartByte != 0 || pair.Range().EndByte != 7 {
		t.Fatalf("unexpected pair range %d-%d",
			pair.Range().StartByte,
			pair.Range().EndByte)
	}

	b := pair.Children()[3]
	if b.Range().StartPoint != (syntax.Point{Row: 1, Column: 1}) {
		t.Fatalf("unexpected b position %s", b.Range().StartPoint)
	}

	comment := root.Children()[1]
	if !comment.IsExtra() {
		t.Fatalf("comment must be an extra")
	}

	if !syntax.Same(pair.FirstChild().NextSibling().Parent(), pair) {
		t.Fatalf("parent links broken")
	}
	if pair.Children()[4].NextSibling() != nil {
		t.Fatalf("last child must not have a sibling")
	}
}

func TestParseMissingAndError(t *testing.T) {
	lang := testLanguage()

	tree := MustParse(
		lang,
		"(a b",
		`(ROOT (pair "(" ident:a (MISSING ",") (ERROR ident:b) (MISSING ")")))`)

	pair := tree.Root().Children()[0]
	missing := pair.Children()[2]
	if !missing.IsMissing() || !missing.Range().IsEmpty() {
		t.Fatalf("expected zero-width missing node")
	}
	if missing.Range().StartByte != 2 {
		t.Fatalf("missing node must sit after a, got %d", missing.Range().StartByte)
	}

	errNode := pair.Children()[3]
	if !errNode.IsError() || errNode.KindId() != syntax.ErrorKindId {
		t.Fatalf("expected error node")
	}
	if !tree.Root().HasError() {
		t.Fatalf("root must report nested errors")
	}
}

func TestParseRejectsUnknownKinds(t *testing.T) {
	lang := testLanguage()

	_, err := Parse(lang, "x", `(ROOT (bogus ident:x))`)
	if err == nil {
		t.Fatalf("expected unknown kind error")
	}

	_, err = Parse(lang, "x", `(ROOT ident:y)`)
	if err == nil {
		t.Fatalf("expected missing leaf text error")
	}
}

func TestEditShiftsRanges(t *testing.T) {
	lang := testLanguage()
	tree := MustParse(lang, "(a,b)", `(ROOT (pair "(" ident:a "," ident:b ")"))`)

	// insert "xx" after "a"
	tree.Edit(syntax.InputEdit{
		StartByte:      2,
		OldEndByte:     2,
		NewEndByte:     4,
		StartPosition:  syntax.Point{Row: 0, Column: 2},
		OldEndPosition: syntax.Point{Row: 0, Column: 2},
		NewEndPosition: syntax.Point{Row: 0, Column: 4},
	})

	b := tree.Root().Children()[0].Children()[3]
	if b.Range().StartByte != 5 || b.Range().StartPoint.Column != 5 {
		t.Fatalf("b must shift by two bytes, got %s", b.Range())
	}

	a := tree.Root().Children()[0].Children()[1]
	if a.Range().StartByte != 1 {
		t.Fatalf("a must not move, got %d", a.Range().StartByte)
	}
}
