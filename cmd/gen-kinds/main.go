// gen-kinds generates a grammar package's kind registry (kinds.go) and
// visitor contract (visitor.go) from the tree-sitter node-types.json.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/tailscale/hujson"

	"github.com/pattyshack/ddlog-lsp/grammar"
)

type nodeType struct {
	Type   string                     `json:"type"`
	Named  bool                       `json:"named"`
	Fields map[string]json.RawMessage `json:"fields"`
}

type entry struct {
	Field string // go identifier
	Name  string // tree-sitter name
}

type tables struct {
	Package  string
	Grammar  string // grammar package constant
	Kinds    []entry
	Keywords []entry
	Symbols  []entry
	Fields   []entry

	Visits  []entry // named non-extra kinds
	Entries []entry

	NamedKinds     []string
	AnonymousKinds []string
	FieldNames     []string
}

// Go names of punctuation runs.  Multi-character symbols are named by
// concatenating their characters' names unless listed here.
var symbolNames = map[string]string{
	"->": "Arrow",
	"<-": "LArrow",
	"=>": "FatArrow",
}

var charNames = map[rune]string{
	'!':  "Bang",
	'"':  "Quote",
	'#':  "Hash",
	'$':  "Dollar",
	'%':  "Percent",
	'&':  "Amp",
	'\'': "Tick",
	'(':  "LParen",
	')':  "RParen",
	'*':  "Star",
	'+':  "Plus",
	',':  "Comma",
	'-':  "Dash",
	'.':  "Dot",
	'/':  "Slash",
	':':  "Colon",
	';':  "Semicolon",
	'<':  "Lt",
	'=':  "Eq",
	'>':  "Gt",
	'?':  "Question",
	'@':  "At",
	'[':  "LBracket",
	'\\': "Backslash",
	']':  "RBracket",
	'^':  "Caret",
	'_':  "Underscore",
	'`':  "Backtick",
	'{':  "LBrace",
	'|':  "Pipe",
	'}':  "RBrace",
	'~':  "Tilde",
}

func isKeyword(name string) bool {
	for idx, char := range name {
		if idx == 0 && !unicode.IsLetter(char) {
			return false
		}
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
			return false
		}
	}
	return name != ""
}

// camel converts snake_case (and ROOT) to CamelCase.
func camel(name string) string {
	if strings.ToUpper(name) == name && isKeyword(name) {
		name = strings.ToLower(name)
	}

	result := ""
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		result += strings.ToUpper(part[:1]) + part[1:]
	}
	return result
}

func symbolName(symbol string) (string, error) {
	if name, ok := symbolNames[symbol]; ok {
		return name, nil
	}

	result := ""
	for _, char := range symbol {
		switch {
		case unicode.IsLetter(char):
			result += string(unicode.ToUpper(char))
		case unicode.IsDigit(char):
			result += string(char)
		default:
			name, ok := charNames[char]
			if !ok {
				return "", fmt.Errorf("no go name for symbol %q", symbol)
			}
			result += name
		}
	}
	return result, nil
}

func splitList(list string) []string {
	result := []string{}
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

func build(
	pkg string,
	g grammar.Grammar,
	content []byte,
	entryKinds []string,
	extraKinds []string,
) (
	*tables,
	error,
) {
	content, err := hujson.Standardize(content)
	if err != nil {
		return nil, fmt.Errorf("invalid node types: %w", err)
	}

	nodeTypes := []nodeType{}
	err = json.Unmarshal(content, &nodeTypes)
	if err != nil {
		return nil, fmt.Errorf("invalid node types: %w", err)
	}

	named := map[string]struct{}{}
	anonymous := map[string]struct{}{}
	fields := map[string]struct{}{}
	for _, nodeType := range nodeTypes {
		if nodeType.Named {
			named[nodeType.Type] = struct{}{}
		} else {
			anonymous[nodeType.Type] = struct{}{}
		}
		for field := range nodeType.Fields {
			fields[field] = struct{}{}
		}
	}

	extras := map[string]struct{}{}
	for _, kind := range extraKinds {
		if _, ok := named[kind]; !ok {
			return nil, fmt.Errorf("unknown extra kind %q", kind)
		}
		extras[kind] = struct{}{}
	}

	result := &tables{
		Package:        pkg,
		Grammar:        strings.ToUpper(strings.TrimPrefix(g.Extension(), ".")),
		NamedKinds:     sortedKeys(named),
		AnonymousKinds: sortedKeys(anonymous),
		FieldNames:     sortedKeys(fields),
	}

	for _, kind := range result.NamedKinds {
		e := entry{Field: camel(kind), Name: kind}
		result.Kinds = append(result.Kinds, e)
		if _, ok := extras[kind]; !ok {
			result.Visits = append(result.Visits, e)
		}
	}

	for _, kind := range entryKinds {
		if _, ok := named[kind]; !ok {
			return nil, fmt.Errorf("unknown entry kind %q", kind)
		}
		result.Entries = append(result.Entries, entry{Field: camel(kind), Name: kind})
	}

	for _, name := range result.AnonymousKinds {
		if isKeyword(name) {
			result.Keywords = append(
				result.Keywords,
				entry{Field: camel(name), Name: name})
			continue
		}

		field, err := symbolName(name)
		if err != nil {
			return nil, err
		}
		result.Symbols = append(result.Symbols, entry{Field: field, Name: name})
	}
	sort.Slice(result.Symbols, func(i int, j int) bool {
		return result.Symbols[i].Field < result.Symbols[j].Field
	})

	for _, name := range result.FieldNames {
		result.Fields = append(result.Fields, entry{Field: camel(name), Name: name})
	}

	err = checkUnique("kind", result.Kinds)
	if err == nil {
		err = checkUnique("keyword", result.Keywords)
	}
	if err == nil {
		err = checkUnique("symbol", result.Symbols)
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

func sortedKeys(set map[string]struct{}) []string {
	result := make([]string, 0, len(set))
	for key := range set {
		result = append(result, key)
	}
	sort.Strings(result)
	return result
}

func checkUnique(class string, entries []entry) error {
	seen := map[string]string{}
	for _, e := range entries {
		if other, ok := seen[e.Field]; ok {
			return fmt.Errorf(
				"%s %q and %q both map to %s",
				class,
				other,
				e.Name,
				e.Field)
		}
		seen[e.Field] = e.Name
	}
	return nil
}

var funcs = template.FuncMap{
	"quote": strconv.Quote,
}

var kindsTemplate = template.Must(template.New("kinds").Funcs(funcs).Parse(
	`// Code generated by gen-kinds; DO NOT EDIT.

package {{.Package}}

import (
	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/syntax"
)

type Kinds struct {
{{- range .Kinds}}
	{{.Field}} uint16
{{- end}}
}

type Keywords struct {
{{- range .Keywords}}
	{{.Field}} uint16
{{- end}}
}

type Symbols struct {
{{- range .Symbols}}
	{{.Field}} uint16
{{- end}}
}

type Fields struct {
{{- range .Fields}}
	{{.Field}} uint16
{{- end}}
}

type Registry struct {
	Kinds    Kinds
	Keywords Keywords
	Symbols  Symbols
	Fields   Fields
}

func NewRegistry(lang syntax.Language) (*Registry, error) {
	resolver := grammar.NewResolver(grammar.{{.Grammar}}, lang)
	registry := &Registry{
		Kinds: Kinds{
{{- range .Kinds}}
			{{.Field}}: resolver.Kind({{quote .Name}}),
{{- end}}
		},
		Keywords: Keywords{
{{- range .Keywords}}
			{{.Field}}: resolver.Keyword({{quote .Name}}),
{{- end}}
		},
		Symbols: Symbols{
{{- range .Symbols}}
			{{.Field}}: resolver.Symbol({{quote .Name}}),
{{- end}}
		},
		Fields: Fields{
{{- range .Fields}}
			{{.Field}}: resolver.Field({{quote .Name}}),
{{- end}}
		},
	}

	err := resolver.Err()
	if err != nil {
		return nil, err
	}
	return registry, nil
}

var NamedKinds = []string{
{{- range .NamedKinds}}
	{{quote .}},
{{- end}}
}

var AnonymousKinds = []string{
{{- range .AnonymousKinds}}
	{{quote .}},
{{- end}}
}

var FieldNames = []string{
{{- range .FieldNames}}
	{{quote .}},
{{- end}}
}
`))

var visitorTemplate = template.Must(template.New("visitor").Funcs(funcs).Parse(
	`// Code generated by gen-kinds; DO NOT EDIT.

package {{.Package}}

import (
	"github.com/pattyshack/ddlog-lsp/rule"
	"github.com/pattyshack/ddlog-lsp/walker"
)

type Visitor interface {
	Walker() *walker.NodeWalker
	Visit() error
{{range .Visits}}
	Visit{{.Field}}(move walker.Move) error
{{- end}}
}

func visitMethods(kinds *Kinds) map[uint16]rule.Rule[Visitor] {
	return map[uint16]rule.Rule[Visitor]{
{{- range .Visits}}
		kinds.{{.Field}}: Visitor.Visit{{.Field}},
{{- end}}
	}
}

func (base *Base) Visit() error {
	kinds := &base.grammar.Kinds
	for !base.walker.Done() {
		switch base.walker.Kind() {
{{- range .Entries}}
		case kinds.{{.Field}}:
			return base.self.Visit{{.Field}}(walker.Init)
{{- end}}
		}

		if !base.walker.GotoNext(walker.StepInto, true) {
			break
		}
	}
	return nil
}
{{range .Visits}}
func (base *Base) Visit{{.Field}}(move walker.Move) error {
	return base.grammar.rules[base.grammar.Kinds.{{.Field}}](base.self, move)
}
{{end}}`))

func render(tmpl *template.Template, data *tables, path string) error {
	buffer := &bytes.Buffer{}
	err := tmpl.Execute(buffer, data)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	formatted, err := format.Source(buffer.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", path, err)
	}

	err = os.WriteFile(path, formatted, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func main() {
	grammarId := flag.String("grammar", "", "grammar id (e.g. ddlog.dl)")
	pkg := flag.String("package", "", "generated package name")
	in := flag.String("in", "node-types.json", "tree-sitter node types")
	out := flag.String("out", ".", "output directory")
	entries := flag.String(
		"entries",
		"ROOT",
		"comma separated kinds a visitor may start from")
	extras := flag.String(
		"extras",
		"",
		"comma separated extra kinds (no visit methods)")
	flag.Parse()

	g, err := grammar.FromId(*grammarId)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *pkg == "" {
		fmt.Fprintln(os.Stderr, "-package is required")
		os.Exit(2)
	}

	content, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ReadFile error:", err)
		os.Exit(1)
	}

	data, err := build(*pkg, g, content, splitList(*entries), splitList(*extras))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, output := range []struct {
		tmpl *template.Template
		name string
	}{
		{kindsTemplate, "kinds.go"},
		{visitorTemplate, "visitor.go"},
	} {
		err := render(output.tmpl, data, filepath.Join(*out, output.name))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
