package syntax_test

import (
	"testing"

	"github.com/pattyshack/ddlog-lsp/syntax"
	"github.com/pattyshack/ddlog-lsp/syntax/memtree"
)

func testLanguage() *memtree.Language {
	return memtree.NewLanguage(memtree.LanguageSpec{
		Named:     []string{"ROOT", "pair", "ident", "string", "comment_line"},
		Anonymous: []string{"=", ";"},
		Extras:    []string{"comment_line"},
	})
}

func TestTreeString(t *testing.T) {
	lang := testLanguage()
	source := "a = \"x y\"; // done"
	tree := memtree.MustParse(
		lang,
		source,
		`(ROOT (pair ident:a "=" string:"\"x y\"") ";" comment_line:"// done")`)

	expected := `(ROOT
  (pair
    ident:a
    "="
    string:"\"x y\"")
  ";"
  comment_line:"// done")`

	actual := syntax.TreeString(lang, tree.RootNode(), []byte(source), "")
	if actual != expected {
		t.Fatalf("expected:\n%s\nfound:\n%s", expected, actual)
	}

	// The output is accepted by memtree.
	reparsed, err := memtree.Parse(lang, source, actual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again := syntax.TreeString(lang, reparsed.RootNode(), []byte(source), "")
	if again != actual {
		t.Fatalf("expected:\n%s\nfound:\n%s", actual, again)
	}
}

func TestTreeStringMissingAndError(t *testing.T) {
	lang := testLanguage()
	source := "a ="
	tree := memtree.MustParse(
		lang,
		source,
		`(ROOT (pair ident:a "=" (MISSING ident)) (MISSING ";") (ERROR))`)

	expected := `(ROOT
  (pair
    ident:a
    "="
    (MISSING ident))
  (MISSING ";")
  (ERROR))`

	actual := syntax.TreeString(lang, tree.RootNode(), []byte(source), "")
	if actual != expected {
		t.Fatalf("expected:\n%s\nfound:\n%s", expected, actual)
	}
}
