package main

import (
	"bytes"
	"go/format"
	"strings"
	"testing"

	"github.com/pattyshack/ddlog-lsp/grammar"
)

const nodeTypes = `[
  // comments and trailing commas are accepted
  {"type": "ROOT", "named": true},
  {"type": "group_by", "named": true, "fields": {"identifier": {}}},
  {"type": "comment_line", "named": true},
  {"type": "FlatMap", "named": false},
  {"type": "lit_num_branch_0", "named": true},
  {"type": "->", "named": false},
  {"type": "'sb", "named": false},
  {"type": "e\"", "named": false},
  {"type": "_", "named": false},
  {"type": "<=", "named": false},
]`

func fieldNames(entries []entry) []string {
	result := []string{}
	for _, e := range entries {
		result = append(result, e.Field)
	}
	return result
}

func expectNames(t *testing.T, expected []string, entries []entry) {
	t.Helper()
	actual := fieldNames(entries)
	if strings.Join(actual, ",") != strings.Join(expected, ",") {
		t.Fatalf("expected %v, found %v", expected, actual)
	}
}

func TestBuild(t *testing.T) {
	data, err := build(
		"dl",
		grammar.DL,
		[]byte(nodeTypes),
		[]string{"ROOT"},
		[]string{"comment_line"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Grammar != "DL" {
		t.Fatalf("unexpected grammar constant: %s", data.Grammar)
	}
	expectNames(t, []string{"Root", "CommentLine", "GroupBy", "LitNumBranch0"}, data.Kinds)
	expectNames(t, []string{"Root", "GroupBy", "LitNumBranch0"}, data.Visits)
	expectNames(t, []string{"Root"}, data.Entries)
	expectNames(t, []string{"FlatMap"}, data.Keywords)
	expectNames(t, []string{"Arrow", "EQuote", "LtEq", "TickSB", "Underscore"}, data.Symbols)
	expectNames(t, []string{"Identifier"}, data.Fields)
}

func TestBuildErrors(t *testing.T) {
	_, err := build("dl", grammar.DL, []byte(nodeTypes), []string{"nope"}, nil)
	if err == nil {
		t.Fatalf("expected unknown entry error")
	}

	_, err = build("dl", grammar.DL, []byte(nodeTypes), nil, []string{"nope"})
	if err == nil {
		t.Fatalf("expected unknown extra error")
	}

	_, err = build("dl", grammar.DL, []byte(`[{"type": "§", "named": false}]`), nil, nil)
	if err == nil {
		t.Fatalf("expected unnamed symbol error")
	}

	_, err = build("dl", grammar.DL, []byte(`[`), nil, nil)
	if err == nil {
		t.Fatalf("expected syntax error")
	}
}

func TestTemplatesFormat(t *testing.T) {
	data, err := build(
		"dl",
		grammar.DL,
		[]byte(nodeTypes),
		[]string{"ROOT"},
		[]string{"comment_line"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, tmpl := range []string{"kinds", "visitor"} {
		buffer := &bytes.Buffer{}
		if tmpl == "kinds" {
			err = kindsTemplate.Execute(buffer, data)
		} else {
			err = visitorTemplate.Execute(buffer, data)
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = format.Source(buffer.Bytes())
		if err != nil {
			t.Fatalf("%s does not format: %v\n%s", tmpl, err, buffer.String())
		}
	}

	buffer := &bytes.Buffer{}
	_ = kindsTemplate.Execute(buffer, data)
	if !strings.Contains(buffer.String(), `resolver.Symbol("e\"")`) {
		t.Fatalf("symbols must be quoted:\n%s", buffer.String())
	}
}
