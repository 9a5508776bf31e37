package walker

import (
	"errors"
	"testing"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/syntax"
	"github.com/pattyshack/ddlog-lsp/syntax/memtree"
)

var testLang = memtree.NewLanguage(memtree.LanguageSpec{
	Named:     []string{"ROOT", "item", "name", "comment_line"},
	Anonymous: []string{"(", ")", ","},
	Extras:    []string{"comment_line"},
})

func kind(name string) uint16 {
	return testLang.IdForNodeKind(name, true)
}

func symbol(name string) uint16 {
	return testLang.IdForNodeKind(name, false)
}

func newWalker(t *testing.T, source string, sexpr string) *NodeWalker {
	tree, err := memtree.Parse(testLang, source, sexpr)
	if err != nil {
		t.Fatalf("bad test tree: %v", err)
	}
	return New(grammar.DL, testLang, tree.RootNode(), kind("comment_line"))
}

func expectType(t *testing.T, err error, expected ErrorType) *SyntaxError {
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected %s, got %v", expected, err)
	}
	if syntaxErr.Type != expected {
		t.Fatalf("expected %s, got %s (%v)", expected, syntaxErr.Type, err)
	}
	return syntaxErr
}

func TestGotoNextIsPreorder(t *testing.T) {
	w := newWalker(
		t,
		"(a) b",
		`(ROOT (item "(" name:a ")") (item name:b))`)

	expected := []string{"item", "(", "name", ")", "item", "name"}
	for _, name := range expected {
		if !w.GotoNext(StepInto, true) {
			t.Fatalf("walker stopped before %s", name)
		}
		actual := testLang.NodeKindForId(w.Kind())
		if actual != name {
			t.Fatalf("expected %s, found %s", name, actual)
		}
	}

	if w.GotoNext(StepInto, true) {
		t.Fatalf("expected end of tree")
	}
	if !w.Done() {
		t.Fatalf("expected walker to be done")
	}
}

func TestStepOverSkipsSubtree(t *testing.T) {
	w := newWalker(
		t,
		"(a) b",
		`(ROOT (item "(" name:a ")") (item name:b))`)

	_, err := w.Step(kind("item"), Step, StepInto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	node, err := w.Step(kind("item"), Step, StepOver)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Range().StartByte != 4 {
		t.Fatalf("expected second item, found %s", node.Range())
	}
}

func TestStepSkipsComments(t *testing.T) {
	w := newWalker(
		t,
		"// x\na",
		`(ROOT comment_line:"// x" (item name:a))`)

	node, err := w.Step(kind("item"), Step, StepInto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Range().StartPoint != (syntax.Point{Row: 1, Column: 0}) {
		t.Fatalf("unexpected item position %s", node.Range())
	}
}

func TestInitSkipsCommentInPlace(t *testing.T) {
	w := newWalker(
		t,
		"// x\na",
		`(ROOT comment_line:"// x" (item name:a))`)

	w.GotoFirstChild()
	if w.Kind() != kind("comment_line") {
		t.Fatalf("expected to start on the comment")
	}

	_, err := w.Step(kind("item"), Init, StepInto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStepMismatchLeavesCursor(t *testing.T) {
	w := newWalker(t, "a", `(ROOT (item name:a))`)

	_, err := w.Step(kind("name"), Step, StepInto)
	syntaxErr := expectType(t, err, NodeMismatchError)
	if syntaxErr.FoundName() != "item" || syntaxErr.WantedName() != "name" {
		t.Fatalf("unexpected mismatch: %v", err)
	}
	if w.Kind() != kind("item") {
		t.Fatalf("cursor should stay on the mismatched node")
	}
}

func TestStepMissingResets(t *testing.T) {
	w := newWalker(t, "(a", `(ROOT (item "(" name:a (MISSING ")")))`)

	w.GotoFirstChild()
	w.GotoFirstChild()
	w.GotoNextSibling()
	checkpoint := w.Node()

	_, err := w.Step(symbol(")"), Step, StepInto)
	syntaxErr := expectType(t, err, NodeMissingError)
	if !syntaxErr.Range.IsEmpty() || syntaxErr.Range.StartByte != 2 {
		t.Fatalf("unexpected missing range %s", syntaxErr.Range)
	}
	if !syntax.Same(w.Node(), checkpoint) {
		t.Fatalf("cursor was not reset")
	}
}

func TestStepPastEnd(t *testing.T) {
	w := newWalker(t, "a,", `(ROOT (item name:a) ",")`)

	w.GotoNext(StepInto, true)
	w.GotoNext(StepInto, true)
	w.GotoNext(StepInto, true)
	if w.Kind() != symbol(",") {
		t.Fatalf("expected to be on ','")
	}

	_, err := w.Step(kind("item"), Step, StepInto)
	syntaxErr := expectType(t, err, WalkerDoneError)
	if syntaxErr.Range.StartByte != 2 || !syntaxErr.Range.IsEmpty() {
		t.Fatalf("expected zero-width range at end of ',', got %+v", syntaxErr.Range)
	}
	if !w.Done() {
		t.Fatalf("expected walker to be done")
	}
}

func TestStepPastEndReportsDocumentEnd(t *testing.T) {
	source := "(a,\n// x\n"
	w := newWalker(
		t,
		source,
		`(ROOT (item "(" name:a ",") comment_line:"// x")`)

	_, err := w.Step(kind("item"), Step, StepInto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w.Enter()
	for _, want := range []uint16{symbol("("), kind("name"), symbol(",")} {
		_, err := w.Step(want, Step, StepInto)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	_, err = w.Step(symbol(")"), Step, StepInto)
	syntaxErr := expectType(t, err, WalkerDoneError)
	w.Leave()

	if syntaxErr.Range.StartByte != uint32(len(source)) || !syntaxErr.Range.IsEmpty() {
		t.Fatalf("expected zero-width range at end of document, got %+v", syntaxErr.Range)
	}
	if syntaxErr.Range.StartPoint != (syntax.Point{Row: 2, Column: 0}) {
		t.Fatalf("expected end of document, got %s", syntaxErr.Range)
	}
}

func TestScopeBoundary(t *testing.T) {
	w := newWalker(
		t,
		"(a) b",
		`(ROOT (item "(" name:a ")") (item name:b))`)

	_, err := w.Step(kind("item"), Step, StepInto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w.Enter()
	for _, want := range []uint16{symbol("("), kind("name"), symbol(")")} {
		_, err := w.Step(want, Step, StepInto)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	_, err = w.Step(kind("item"), Step, StepInto)
	syntaxErr := expectType(t, err, WalkerDoneError)
	if syntaxErr.Range.StartByte != 3 {
		t.Fatalf("expected done at end of first item, got %s", syntaxErr.Range)
	}
	w.Leave()

	w.Reset(w.Node())
	node, err := w.Step(kind("item"), Step, StepInto)
	if err != nil {
		t.Fatalf("unexpected error after leaving scope: %v", err)
	}
	if node.Range().StartByte != 4 {
		t.Fatalf("expected second item, found %s", node.Range())
	}
}

func TestPeekDoesNotMove(t *testing.T) {
	w := newWalker(t, "a", `(ROOT (item name:a))`)

	root := w.Node()
	next, err := w.Peek(Step)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.KindId() != kind("item") {
		t.Fatalf("unexpected peeked kind")
	}
	if !syntax.Same(root, w.Node()) {
		t.Fatalf("peek moved the cursor")
	}

	current, err := w.Peek(Init)
	if err != nil || !syntax.Same(current, root) {
		t.Fatalf("peek init should return the current node")
	}
}

func TestEmptyRoot(t *testing.T) {
	w := New(grammar.DAT, testLang, nil)
	if !w.Done() {
		t.Fatalf("walker without a root is done")
	}

	_, err := w.Step(kind("ROOT"), Init, StepInto)
	expectType(t, err, WalkerMoveError)
}

func TestErrorMessages(t *testing.T) {
	w := newWalker(t, "a", `(ROOT (item name:a))`)

	choice := w.NewChoiceError(
		syntax.Range{},
		[]Alternative{
			{Kind: symbol(",")},
			{Kind: symbol(")")},
		})
	if choice.Message() != "syntax error: expected one of [,, )]" {
		t.Fatalf("unexpected choice message %q", choice.Message())
	}

	done := w.NewDoneError(syntax.Range{})
	if done.Message() !=
		"syntax error: internal error (parsing terminated too early)" {
		t.Fatalf("unexpected done message %q", done.Message())
	}

	moveErr := w.newError(WalkerMoveError, syntax.Range{})
	if moveErr.Message() !=
		"syntax error: internal error (failed to move to next node)" {
		t.Fatalf("unexpected move message %q", moveErr.Message())
	}
}

func TestEmitterOrdersSyntaxErrors(t *testing.T) {
	w := newWalker(t, "(a)\nb", `(ROOT (item "(" name:a ")") (item name:b))`)

	late := w.NewDoneError(syntax.Range{
		StartByte:  4,
		EndByte:    5,
		StartPoint: syntax.Point{Row: 1, Column: 0},
		EndPoint:   syntax.Point{Row: 1, Column: 1},
	})
	early := w.NewMismatchError(
		syntax.Range{
			StartByte:  1,
			EndByte:    2,
			StartPoint: syntax.Point{Row: 0, Column: 1},
			EndPoint:   syntax.Point{Row: 0, Column: 2},
		},
		kind("name"),
		symbol(")"))
	plain := errors.New("no parser")

	emitter := &parseutil.Emitter{}
	emitter.EmitErrors(late, plain, early)

	errs := emitter.Errors()
	if len(errs) != 3 || errs[0] != plain || errs[1] != early || errs[2] != late {
		t.Fatalf("unexpected order: %v", errs)
	}

	if early.Loc() != (parseutil.Location{Line: 1, Column: 1}) ||
		late.End() != (parseutil.Location{Line: 2, Column: 1}) {
		t.Fatalf("unexpected locations: %s %s", early.Loc(), late.End())
	}
}
