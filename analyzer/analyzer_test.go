package analyzer

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/ddlog-lsp/dat"
	"github.com/pattyshack/ddlog-lsp/dl"
	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/symbol"
	"github.com/pattyshack/ddlog-lsp/syntax/memtree"
	"github.com/pattyshack/ddlog-lsp/walker"
)

var (
	dlLang = memtree.NewLanguage(memtree.LanguageSpec{
		Named:     dl.NamedKinds,
		Anonymous: dl.AnonymousKinds,
		Fields:    dl.FieldNames,
		Extras:    dl.ExtraKinds,
	})

	datLang = memtree.NewLanguage(memtree.LanguageSpec{
		Named:     dat.NamedKinds,
		Anonymous: dat.AnonymousKinds,
		Fields:    dat.FieldNames,
		Extras:    dat.ExtraKinds,
	})

	testGrammars = Grammars{
		DL:  dl.MustLoad(dlLang),
		DAT: dat.MustLoad(datLang),
	}
)

const (
	typedefSource = "typedef Foo = bit<8>"
	typedefTree   = `
(ROOT
  (annotated_item
    (item
      (typedef
        (typedef_normal
          "typedef"
          (name_type ident_upper_scoped:Foo)
          "="
          (type (type_bit "bit" "<" lit_num_dec:8 ">")))))))`

	badTypedefSource = "typedef Foo = bit<>"
	badTypedefTree   = `
(ROOT
  (annotated_item
    (item
      (typedef
        (typedef_normal
          "typedef"
          (name_type ident_upper_scoped:Foo)
          "="
          (type (type_bit "bit" "<" (ERROR) ">")))))))`

	commandsSource = "start;\nclear R;\n"
	commandsTree   = `
(ROOT
  (command (start "start" ";"))
  (command (clear "clear" (name_rel ident_upper_scoped:R) ";")))`
)

func entry(
	t *testing.T,
	g grammar.Grammar,
	source string,
	sexpr string,
) *Entry {
	t.Helper()
	lang := dlLang
	if g == grammar.DAT {
		lang = datLang
	}

	tree, err := memtree.Parse(lang, source, sexpr)
	if err != nil {
		t.Fatalf("bad test tree: %v", err)
	}
	return &Entry{
		Name:    "test" + g.Extension(),
		Grammar: g,
		Source:  []byte(source),
		Root:    tree.RootNode(),
	}
}

func TestAnalyzeValidDocument(t *testing.T) {
	result := Analyze(
		testGrammars,
		entry(t, grammar.DL, typedefSource, typedefTree))

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Identifiers) != 1 ||
		result.Identifiers[0].Name != "Foo" ||
		result.Identifiers[0].Kind != symbol.Type ||
		!result.Identifiers[0].Declaration {
		t.Fatalf("unexpected identifiers: %v", result.Identifiers)
	}
}

func TestAnalyzeReportsSyntaxError(t *testing.T) {
	result := Analyze(
		testGrammars,
		entry(t, grammar.DL, badTypedefSource, badTypedefTree))

	if len(result.Errors) != 1 {
		t.Fatalf("expected one error, found %v", result.Errors)
	}

	var syntaxErr *walker.SyntaxError
	if !errors.As(result.Errors[0], &syntaxErr) ||
		syntaxErr.Type != walker.ChoiceError {
		t.Fatalf("unexpected error: %v", result.Errors[0])
	}

	// The type name precedes the error and is still collected.
	if len(result.Identifiers) != 1 || result.Identifiers[0].Name != "Foo" {
		t.Fatalf("unexpected identifiers: %v", result.Identifiers)
	}
}

func TestAnalyzeDat(t *testing.T) {
	result := Analyze(
		testGrammars,
		entry(t, grammar.DAT, commandsSource, commandsTree))

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Identifiers) != 1 ||
		result.Identifiers[0].Name != "R" ||
		result.Identifiers[0].Kind != symbol.Relation {
		t.Fatalf("unexpected identifiers: %v", result.Identifiers)
	}
}

func TestMissingGrammar(t *testing.T) {
	grammars := Grammars{DL: testGrammars.DL}
	if grammars.Has(grammar.DAT) || !grammars.Has(grammar.DL) {
		t.Fatalf("unexpected grammar availability")
	}

	result := Analyze(
		grammars,
		entry(t, grammar.DAT, commandsSource, commandsTree))
	if len(result.Errors) != 1 ||
		!strings.Contains(result.Errors[0].Error(), "no ddlog.dat grammar loaded") {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Identifiers) != 0 {
		t.Fatalf("unexpected identifiers: %v", result.Identifiers)
	}
}

func TestValidateSyntaxPass(t *testing.T) {
	emitter := &parseutil.Emitter{}
	pass := ValidateSyntax(testGrammars, emitter)

	pass.Process(entry(t, grammar.DL, typedefSource, typedefTree))
	if emitter.HasErrors() {
		t.Fatalf("unexpected errors: %v", emitter.Errors())
	}

	pass.Process(entry(t, grammar.DL, badTypedefSource, badTypedefTree))
	if len(emitter.Errors()) != 1 {
		t.Fatalf("expected one error, found %v", emitter.Errors())
	}
}

func TestAnalyzeAllKeepsOrder(t *testing.T) {
	entries := []*Entry{
		entry(t, grammar.DL, badTypedefSource, badTypedefTree),
		entry(t, grammar.DAT, commandsSource, commandsTree),
		entry(t, grammar.DL, typedefSource, typedefTree),
	}

	results := AnalyzeAll(testGrammars, entries)
	if len(results) != 3 {
		t.Fatalf("unexpected results: %v", results)
	}
	if len(results[0].Errors) != 1 ||
		len(results[1].Errors) != 0 ||
		len(results[2].Errors) != 0 {
		t.Fatalf("unexpected results: %v", results)
	}
	if results[1].Identifiers[0].Name != "R" {
		t.Fatalf("unexpected identifiers: %v", results[1].Identifiers)
	}
}

type countingPass struct {
	count *int32
}

func (pass countingPass) Process(int) {
	atomic.AddInt32(pass.count, 1)
}

func TestProcessEarlyExit(t *testing.T) {
	count := int32(0)
	pass := countingPass{count: &count}

	Process(
		0,
		[][]Pass[int]{{pass, pass}, {pass}},
		func() bool { return true })
	if count != 2 {
		t.Fatalf("expected 2 passes to run, found %d", count)
	}

	Process(0, [][]Pass[int]{{pass, pass}, {pass}}, nil)
	if count != 5 {
		t.Fatalf("expected 5 passes to run, found %d", count)
	}
}

func TestParallelProcessBoundsWorkers(t *testing.T) {
	items := make([]int, 20)
	for idx := range items {
		items[idx] = idx
	}

	running := int32(0)
	peak := int32(0)
	seen := make([]int32, len(items))
	ParallelProcess(
		items,
		3,
		func(item int) {
			current := atomic.AddInt32(&running, 1)
			for {
				old := atomic.LoadInt32(&peak)
				if current <= old || atomic.CompareAndSwapInt32(&peak, old, current) {
					break
				}
			}
			atomic.AddInt32(&seen[item], 1)
			atomic.AddInt32(&running, -1)
		})

	if peak > 3 {
		t.Fatalf("expected at most 3 workers, found %d", peak)
	}
	for idx, count := range seen {
		if count != 1 {
			t.Fatalf("item %d processed %d times", idx, count)
		}
	}

	// No items, no workers.
	ParallelProcess([]int{}, 0, func(int) { t.Fatalf("unexpected call") })
}
