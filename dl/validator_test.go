package dl

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/pattyshack/ddlog-lsp/syntax/memtree"
	"github.com/pattyshack/ddlog-lsp/walker"
)

var testLang = memtree.NewLanguage(memtree.LanguageSpec{
	Named:     NamedKinds,
	Anonymous: AnonymousKinds,
	Fields:    FieldNames,
	Extras:    ExtraKinds,
})

var testGrammar = MustLoad(testLang)

func parse(t *testing.T, source string, sexpr string) *memtree.Tree {
	t.Helper()
	tree, err := memtree.Parse(testLang, source, sexpr)
	if err != nil {
		t.Fatalf("bad test tree: %v", err)
	}
	return tree
}

func validate(t *testing.T, source string, sexpr string) error {
	t.Helper()
	return Validate(testGrammar, parse(t, source, sexpr).RootNode())
}

func expectType(
	t *testing.T,
	err error,
	expected walker.ErrorType,
) *walker.SyntaxError {
	t.Helper()
	var syntaxErr *walker.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected %s, got %v", expected, err)
	}
	if syntaxErr.Type != expected {
		t.Fatalf("expected %s, got %v", expected, err)
	}
	return syntaxErr
}

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

	functionSource = "function f(x: u32): u32 = x + 1"
	functionTree   = `
(ROOT
  (annotated_item
    (item
      (function
        (function_normal
          "function"
          (name_func ident_lower_scoped:f)
          "("
          (arg
            (name_arg ident_lower:x)
            ":"
            (type_atom (type_user (name_type ident_lower_scoped:u32))))
          ")"
          ":"
          (type_atom (type_user (name_type ident_lower_scoped:u32)))
          "="
          (exp
            (exp_add
              (exp (name_var_term ident_lower_scoped:x))
              "+"
              (exp
                (exp_lit (lit (lit_num (lit_num_branch_0 lit_num_dec:1))))))))))))`

	relationSource = "input relation R(a: u32, b: string)\nR(1, \"hi\")."
	relationTree   = `
(ROOT
  (annotated_item
    (item
      (rel
        (rel_args
          (rel_role "input")
          (rel_semantics "relation")
          (name_rel ident_upper_scoped:R)
          "("
          (arg
            (name_arg ident_lower:a)
            ":"
            (type_atom (type_user (name_type ident_lower_scoped:u32))))
          ","
          (arg (name_arg ident_lower:b) ":" (type_atom (type_string "string")))
          ")"))))
  (annotated_item
    (item
      (rule
        (atom
          (atom_pos
            (name_rel ident_upper_scoped:R)
            "("
            (exp (exp_lit (lit (lit_num (lit_num_branch_0 lit_num_dec:1)))))
            ","
            (exp
              (exp_lit
                (lit (lit_string (string_quoted "\"" string_fragment:hi "\"")))))
            ")"))
        (rule_end ".")))))`
)

func TestLoadDefinesEveryKind(t *testing.T) {
	for kind := range testGrammar.visits {
		if testGrammar.Rule(kind) == nil {
			t.Fatalf("no rule for %s", testLang.NodeKindForId(kind))
		}
	}
	if len(testGrammar.visits) != len(NamedKinds)-len(ExtraKinds) {
		t.Fatalf(
			"expected %d visited kinds, found %d",
			len(NamedKinds)-len(ExtraKinds),
			len(testGrammar.visits))
	}
}

func TestRegistryReportsDrift(t *testing.T) {
	lang := memtree.NewLanguage(memtree.LanguageSpec{
		Named:     []string{"ROOT"},
		Anonymous: []string{"typedef"},
	})

	_, err := Load(lang)
	if err == nil {
		t.Fatalf("expected registry failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, `unknown kind "annotated_item"`) ||
		!strings.Contains(msg, `unknown symbol ","`) ||
		!strings.Contains(msg, `unknown field "identifier"`) {
		t.Fatalf("unexpected error: %s", msg)
	}
	if strings.Contains(msg, `unknown keyword "typedef"`) {
		t.Fatalf("typedef keyword resolved and should not be reported: %s", msg)
	}
}

func TestEmptyDocument(t *testing.T) {
	err := validate(t, "", `(ROOT)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTypedef(t *testing.T) {
	err := validate(t, typedefSource, typedefTree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTypedefBadWidth(t *testing.T) {
	err := validate(
		t,
		"typedef Foo = bit<>",
		`
(ROOT
  (annotated_item
    (item
      (typedef
        (typedef_normal
          "typedef"
          (name_type ident_upper_scoped:Foo)
          "="
          (type (type_bit "bit" "<" (ERROR) ">")))))))`)

	syntaxErr := expectType(t, err, walker.ChoiceError)
	if !reflect.DeepEqual(syntaxErr.Expected(), []string{"lit_num_dec"}) {
		t.Fatalf("unexpected alternatives: %v", syntaxErr.Expected())
	}
	if syntaxErr.Range.StartByte < 17 || syntaxErr.Range.EndByte > 19 {
		t.Fatalf("error should be within <>, found %v", syntaxErr.Range)
	}
}

func TestFunction(t *testing.T) {
	err := validate(t, functionSource, functionTree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRelationAndFact(t *testing.T) {
	err := validate(t, relationSource, relationTree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFactMissingComma(t *testing.T) {
	err := validate(
		t,
		"relation R(a: u32)\nR(1 \"hi\").",
		`
(ROOT
  (annotated_item
    (item
      (rel
        (rel_args
          (rel_semantics "relation")
          (name_rel ident_upper_scoped:R)
          "("
          (arg
            (name_arg ident_lower:a)
            ":"
            (type_atom (type_user (name_type ident_lower_scoped:u32))))
          ")"))))
  (annotated_item
    (item
      (rule
        (atom
          (atom_pos
            (name_rel ident_upper_scoped:R)
            "("
            (exp (exp_lit (lit (lit_num (lit_num_branch_0 lit_num_dec:1)))))
            (exp
              (exp_lit
                (lit (lit_string (string_quoted "\"" string_fragment:hi "\"")))))
            ")"))
        (rule_end ".")))))`)

	syntaxErr := expectType(t, err, walker.ChoiceError)
	if !reflect.DeepEqual(syntaxErr.Expected(), []string{",", ")"}) {
		t.Fatalf("unexpected alternatives: %v", syntaxErr.Expected())
	}
	if syntaxErr.Range.StartByte != 23 || syntaxErr.Range.EndByte != 27 {
		t.Fatalf("error should cover \"hi\", found %v", syntaxErr.Range)
	}
}

func TestCommentsAreTransparent(t *testing.T) {
	err := validate(
		t,
		"typedef /* c */ Foo = // x\n bit<8>",
		`
(ROOT
  (annotated_item
    (item
      (typedef
        (typedef_normal
          "typedef"
          comment_block:"/* c */"
          (name_type ident_upper_scoped:Foo)
          "="
          comment_line:"// x"
          (type (type_bit "bit" "<" lit_num_dec:8 ">")))))))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCommentsOnly(t *testing.T) {
	err := validate(
		t,
		"// a\n/* b */",
		`(ROOT comment_line:"// a" comment_block:"/* b */")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSingleToken(t *testing.T) {
	err := validate(t, "foo", `(ROOT (ERROR ident_lower:foo))`)
	syntaxErr := expectType(t, err, walker.ChoiceError)
	if syntaxErr.Range.StartByte != 0 || syntaxErr.Range.EndByte != 3 {
		t.Fatalf("error should cover the token, found %v", syntaxErr.Range)
	}
	if len(syntaxErr.Expected()) != 1 || syntaxErr.Expected()[0] != "annotated_item" {
		t.Fatalf("unexpected alternatives: %v", syntaxErr.Expected())
	}
}

func TestMissingNode(t *testing.T) {
	err := validate(
		t,
		"R(1)",
		`
(ROOT
  (annotated_item
    (item
      (rule
        (atom
          (atom_pos
            (name_rel ident_upper_scoped:R)
            "("
            (exp (exp_lit (lit (lit_num (lit_num_branch_0 lit_num_dec:1)))))
            ")"))
        (rule_end (MISSING "."))))))`)

	syntaxErr := expectType(t, err, walker.NodeMissingError)
	if syntaxErr.Range.StartByte != 4 || !syntaxErr.Range.IsEmpty() {
		t.Fatalf("unexpected range %v", syntaxErr.Range)
	}
}

func TestSizedLiteral(t *testing.T) {
	err := validate(
		t,
		"function f(): bit<8> = 8'hFF",
		`
(ROOT
  (annotated_item
    (item
      (function
        (function_normal
          "function"
          (name_func ident_lower_scoped:f)
          "(" ")"
          ":"
          (type_atom (type_bit "bit" "<" lit_num_dec:8 ">"))
          "="
          (exp
            (exp_lit
              (lit
                (lit_num
                  (lit_num_branch_13 lit_num_dec:8 "'h" lit_num_hex:FF))))))))))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidationIsRepeatable(t *testing.T) {
	tree := parse(t, "typedef Foo = bit<>", `
(ROOT
  (annotated_item
    (item
      (typedef
        (typedef_normal
          "typedef"
          (name_type ident_upper_scoped:Foo)
          "="
          (type (type_bit "bit" "<" (ERROR) ">")))))))`)

	first := NewValidator(testGrammar, tree.RootNode()).Visit()
	second := NewValidator(testGrammar, tree.RootNode()).Visit()
	if first == nil || second == nil || first.Error() != second.Error() {
		t.Fatalf("expected identical errors: %v vs %v", first, second)
	}
}

type relationRecorder struct {
	*Base
	source string
	names  []string
}

func (recorder *relationRecorder) VisitNameRel(move walker.Move) error {
	err := recorder.Base.VisitNameRel(move)
	if err != nil {
		return err
	}

	rng := recorder.Walker().Range()
	recorder.names = append(
		recorder.names,
		recorder.source[rng.StartByte:rng.EndByte])
	return nil
}

func TestOverrideIsUsedAtDepth(t *testing.T) {
	tree := parse(t, relationSource, relationTree)

	recorder := &relationRecorder{source: relationSource}
	recorder.Base = NewBase(recorder, testGrammar, tree.RootNode())

	err := recorder.Visit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(recorder.names, []string{"R", "R"}) {
		t.Fatalf("unexpected relation names: %v", recorder.names)
	}
}

func TestVisitFromInnerNode(t *testing.T) {
	tree := parse(t, typedefSource, typedefTree)

	// item is not a top level kind.  Visit searches the item's subtree for
	// one, and finds none.
	item := tree.Root().Children()[0].Children()[0]
	err := NewValidator(testGrammar, item).Visit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	annotated := tree.Root().Children()[0]
	err = NewValidator(testGrammar, annotated).Visit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
