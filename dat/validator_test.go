package dat

import (
	"errors"
	"strings"
	"testing"

	"github.com/pattyshack/ddlog-lsp/syntax"
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

func validate(t *testing.T, source string, sexpr string) error {
	t.Helper()
	tree, err := memtree.Parse(testLang, source, sexpr)
	if err != nil {
		t.Fatalf("bad test tree: %v", err)
	}
	return Validate(testGrammar, tree.RootNode())
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

func TestLoadDefinesEveryKind(t *testing.T) {
	for kind := range testGrammar.visits {
		if testGrammar.Rule(kind) == nil {
			t.Fatalf("no rule for %s", testLang.NodeKindForId(kind))
		}
	}
}

func TestTransaction(t *testing.T) {
	err := validate(
		t,
		"start;\ncommit;\n",
		`
(ROOT
  (command (start "start" ";"))
  (command (commit "commit" ";")))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCommitDumpChanges(t *testing.T) {
	err := validate(
		t,
		"commit dump_changes;",
		`(ROOT (command (commit "commit" "dump_changes" ";")))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdates(t *testing.T) {
	err := validate(
		t,
		"insert R(1, \"x\"),\ndelete R(-2, \"y\");",
		`
(ROOT
  (command
    (updates
      (update
        (insert
          "insert"
          (atom
            (atom_pos
              (name_rel ident_upper_scoped:R)
              "("
              (record (lit_num lit_num_dec:1))
              ","
              (record (lit_string "\"" string_fragment:x "\""))
              ")"))))
      ","
      (update
        (delete
          "delete"
          (atom
            (atom_pos
              (name_rel ident_upper_scoped:R)
              "("
              (record (lit_num "-" lit_num_dec:2))
              ","
              (record (lit_string "\"" string_fragment:y "\""))
              ")"))))
      (updates_end ";"))))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdatesMissingEnd(t *testing.T) {
	err := validate(
		t,
		"insert R(1, \"x\"),\n",
		`
(ROOT
  (command
    (updates
      (update
        (insert
          "insert"
          (atom
            (atom_pos
              (name_rel ident_upper_scoped:R)
              "("
              (record (lit_num lit_num_dec:1))
              ","
              (record (lit_string "\"" string_fragment:x "\""))
              ")"))))
      ",")))`)

	syntaxErr := expectType(t, err, walker.WalkerDoneError)
	if syntaxErr.Range.StartByte != 18 || !syntaxErr.Range.IsEmpty() {
		t.Fatalf("error should be at the end of the document, found %v", syntaxErr.Range)
	}
	if syntaxErr.Range.StartPoint != (syntax.Point{Row: 1, Column: 0}) {
		t.Fatalf("error should be at the end of the document, found %v", syntaxErr.Range)
	}
}

func TestNamedRecordAndSerialized(t *testing.T) {
	err := validate(
		t,
		"insert R(.a = C{1}, .b = @json \"{}\");",
		`
(ROOT
  (command
    (updates
      (update
        (insert
          "insert"
          (atom
            (atom_rec
              (name_rel ident_upper_scoped:R)
              "("
              (field
                "."
                (name_field ident_lower:a)
                "="
                (record
                  (record_struct
                    (name_cons ident_upper_scoped:C)
                    "{"
                    (record (lit_num lit_num_dec:1))
                    "}")))
              ","
              (field
                "."
                (name_field ident_lower:b)
                "="
                (record
                  (lit_serialized
                    "@"
                    (serde_encoding "json")
                    (lit_string "\"" string_fragment:{} "\""))))
              ")"))))
      (updates_end ";"))))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCommentsOnly(t *testing.T) {
	err := validate(
		t,
		"# a\n# b\n",
		`(ROOT comment_line:"# a" comment_line:"# b")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProfileBadArgument(t *testing.T) {
	err := validate(
		t,
		"profile cpu 1;",
		`
(ROOT
  (command
    (profile "profile" "cpu" (ERROR lit_num_dec:1) ";")))`)

	syntaxErr := expectType(t, err, walker.ChoiceError)
	if syntaxErr.Range.StartByte != 12 || syntaxErr.Range.EndByte != 13 {
		t.Fatalf("error should cover 1, found %v", syntaxErr.Range)
	}
}

func TestRecordReferences(t *testing.T) {
	source := "insert R(.a = C{1}, .b = true);\ndump_index I;"
	tree, err := memtree.Parse(testLang, source, `
(ROOT
  (command
    (updates
      (update
        (insert
          "insert"
          (atom
            (atom_rec
              (name_rel ident_upper_scoped:R)
              "("
              (field
                "."
                (name_field ident_lower:a)
                "="
                (record
                  (record_struct
                    (name_cons ident_upper_scoped:C)
                    "{"
                    (record (lit_num lit_num_dec:1))
                    "}")))
              ","
              (field "." (name_field ident_lower:b) "=" (record (lit_bool "true")))
              ")"))))
      (updates_end ";")))
  (command (dump_index "dump_index" (name_index ident_scoped:I) ";")))`)
	if err != nil {
		t.Fatalf("bad test tree: %v", err)
	}

	recorder := NewIdentifierRecorder(testGrammar, tree.RootNode(), []byte(source))
	err = recorder.Visit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := []string{}
	for _, identifier := range recorder.Identifiers() {
		if identifier.Declaration {
			t.Fatalf("unexpected declaration %v", identifier)
		}
		names = append(names, identifier.Kind.String()+" "+identifier.Name)
	}

	expected := []string{
		"relation R",
		"field a",
		"constructor C",
		"field b",
		"index I",
	}
	if strings.Join(names, ",") != strings.Join(expected, ",") {
		t.Fatalf("unexpected identifiers: %v", names)
	}
}

func TestCommentsAreTransparent(t *testing.T) {
	err := validate(
		t,
		"start # x\n;\n# y\ncommit;",
		`
(ROOT
  (command (start "start" comment_line:"# x" ";"))
  comment_line:"# y"
  (command (commit "commit" ";")))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidationIsRepeatable(t *testing.T) {
	tree, err := memtree.Parse(
		testLang,
		"profile cpu 1;",
		`
(ROOT
  (command
    (profile "profile" "cpu" (ERROR lit_num_dec:1) ";")))`)
	if err != nil {
		t.Fatalf("bad test tree: %v", err)
	}

	first := NewValidator(testGrammar, tree.RootNode()).Visit()
	second := NewValidator(testGrammar, tree.RootNode()).Visit()
	if first == nil || second == nil || first.Error() != second.Error() {
		t.Fatalf("expected identical errors: %v vs %v", first, second)
	}
}
