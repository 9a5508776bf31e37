package diagnostic_test

import (
	"errors"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/pattyshack/ddlog-lsp/diagnostic"
	"github.com/pattyshack/ddlog-lsp/document"
	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/syntax/memtree"
	"github.com/pattyshack/ddlog-lsp/walker"
)

var testLang = memtree.NewLanguage(memtree.LanguageSpec{
	Named:     []string{"ROOT", "name"},
	Anonymous: []string{";", ","},
})

const source = "é a;\nb ,"

func testWalker(t *testing.T) (*walker.NodeWalker, *memtree.Tree) {
	t.Helper()
	tree, err := memtree.Parse(testLang, source, `(ROOT name:a ";" name:b ",")`)
	if err != nil {
		t.Fatalf("bad test tree: %v", err)
	}
	return walker.New(grammar.DL, testLang, tree.RootNode()), tree
}

func TestRangeRoundTrip(t *testing.T) {
	doc := document.New("file:///a.dl", grammar.DL, 1, source)
	_, tree := testWalker(t)

	for node := tree.Root().FirstChild(); node != nil; node = node.NextSibling() {
		rng := node.Range()
		lspRange := diagnostic.RangeToLSP(doc, rng)
		if diagnostic.RangeFromLSP(doc, lspRange) != rng {
			t.Fatalf(
				"round trip changed %v to %v",
				rng,
				diagnostic.RangeFromLSP(doc, lspRange))
		}
	}

	name := tree.Root().Children()[0].Range()
	lspRange := diagnostic.RangeToLSP(doc, name)
	expected := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 2},
		End:   protocol.Position{Line: 0, Character: 3},
	}
	if lspRange != expected {
		t.Fatalf("unexpected range %v", lspRange)
	}
}

func TestMismatchDiagnostic(t *testing.T) {
	doc := document.New("file:///a.dl", grammar.DL, 1, source)
	w, _ := testWalker(t)

	_, err := w.Step(testLang.IdForNodeKind(";", false), walker.Step, walker.StepInto)
	if err == nil {
		t.Fatalf("expected mismatch")
	}

	var syntaxErr *walker.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("unexpected error %v", err)
	}

	diag := diagnostic.FromSyntaxError("file:///a.dl", doc, syntaxErr)
	if diag.Message != "syntax node mismatch error" {
		t.Fatalf("unexpected message %q", diag.Message)
	}
	if diag.Severity == nil || *diag.Severity != protocol.DiagnosticSeverityError {
		t.Fatalf("unexpected severity %v", diag.Severity)
	}
	if diag.Source == nil || *diag.Source != diagnostic.Source {
		t.Fatalf("unexpected source %v", diag.Source)
	}
	if len(diag.RelatedInformation) != 2 ||
		diag.RelatedInformation[0].Message != "found: name" ||
		diag.RelatedInformation[1].Message != "expected: ;" {
		t.Fatalf("unexpected related information %v", diag.RelatedInformation)
	}
	for _, info := range diag.RelatedInformation {
		if info.Location.Range != diag.Range || info.Location.URI != "file:///a.dl" {
			t.Fatalf("unexpected location %v", info.Location)
		}
	}
}

func TestChoiceDiagnostic(t *testing.T) {
	doc := document.New("file:///a.dl", grammar.DL, 1, source)
	w, tree := testWalker(t)

	comma := tree.Root().Children()[3].Range()
	semi := testLang.IdForNodeKind(";", false)
	name := testLang.IdForNodeKind("name", true)
	err := w.NewChoiceError(
		comma,
		[]walker.Alternative{
			{Kind: semi, Err: w.NewMismatchError(comma, 0, semi)},
			{Kind: name, Err: w.NewMismatchError(comma, 0, name)},
		})

	diag := diagnostic.FromError("file:///a.dl", doc, err)
	if diag.Message != "syntax error: expected one of [;, name]" {
		t.Fatalf("unexpected message %q", diag.Message)
	}
	if len(diag.RelatedInformation) != 0 {
		t.Fatalf("unexpected related information %v", diag.RelatedInformation)
	}

	expected := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 2},
		End:   protocol.Position{Line: 1, Character: 3},
	}
	if diag.Range != expected {
		t.Fatalf("unexpected range %v", diag.Range)
	}
}

func TestOtherErrors(t *testing.T) {
	doc := document.New("file:///a.dl", grammar.DL, 1, source)

	diag := diagnostic.FromError("file:///a.dl", doc, errors.New("boom"))
	if diag.Message != "boom" || diag.Range != (protocol.Range{}) {
		t.Fatalf("unexpected diagnostic %v", diag)
	}
}
