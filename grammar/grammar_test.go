package grammar

import (
	"strings"
	"testing"

	"github.com/pattyshack/ddlog-lsp/syntax/memtree"
)

func TestGrammarIds(t *testing.T) {
	if DL.String() != "ddlog.dl" || DAT.String() != "ddlog.dat" {
		t.Fatalf("unexpected grammar ids %s %s", DL, DAT)
	}

	g, err := FromId("ddlog.dat")
	if err != nil || g != DAT {
		t.Fatalf("expected DAT, got %v (%v)", g, err)
	}

	_, err = FromId("ddlog.sql")
	if err == nil {
		t.Fatalf("expected unknown id error")
	}
}

func TestFromPath(t *testing.T) {
	g, ok := FromPath("/tmp/x/program.dl")
	if !ok || g != DL {
		t.Fatalf("expected DL")
	}

	g, ok = FromPath("replay.dat")
	if !ok || g != DAT {
		t.Fatalf("expected DAT")
	}

	_, ok = FromPath("notes.txt")
	if ok {
		t.Fatalf("txt is not a ddlog file")
	}
}

func TestResolverReportsEveryMissingName(t *testing.T) {
	lang := memtree.NewLanguage(memtree.LanguageSpec{
		Named:     []string{"ROOT"},
		Anonymous: []string{"typedef", ","},
	})

	resolver := NewResolver(DL, lang)
	if resolver.Kind("ROOT") == 0 {
		t.Fatalf("ROOT must resolve")
	}
	if resolver.Keyword("typedef") == 0 || resolver.Symbol(",") == 0 {
		t.Fatalf("anonymous names must resolve")
	}
	if resolver.Err() != nil {
		t.Fatalf("unexpected error: %v", resolver.Err())
	}

	resolver.Kind("typedef") // anonymous only
	resolver.Field("identifier")
	err := resolver.Err()
	if err == nil {
		t.Fatalf("expected resolution failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, `unknown kind "typedef"`) ||
		!strings.Contains(msg, `unknown field "identifier"`) {
		t.Fatalf("unexpected error message: %s", msg)
	}
}

func TestKindName(t *testing.T) {
	lang := memtree.NewLanguage(memtree.LanguageSpec{Named: []string{"ROOT"}})
	if KindName(lang, 1) != "ROOT" {
		t.Fatalf("unexpected kind name")
	}
	if KindName(lang, 0xFFFF) != "ERROR" {
		t.Fatalf("unexpected error kind name")
	}
	if KindName(lang, 42) != "kind(42)" {
		t.Fatalf("unexpected unknown kind name %q", KindName(lang, 42))
	}
}
