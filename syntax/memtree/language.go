// Package memtree implements the syntax interfaces over trees held in
// memory.  Trees are written as tree-sitter style S-expressions over a
// source string, which makes it possible to exercise validators without a
// compiled parser.
package memtree

import (
	"github.com/pattyshack/ddlog-lsp/syntax"
)

type LanguageSpec struct {
	Named     []string
	Anonymous []string
	Fields    []string
	Extras    []string
}

type Language struct {
	named     map[string]uint16
	anonymous map[string]uint16
	fields    map[string]uint16
	extras    map[uint16]struct{}
	names     []string // indexed by kind id
}

var _ syntax.Language = &Language{}

// NewLanguage assigns kind ids 1..n in the order named kinds then anonymous
// kinds are listed.  Field ids start at 1.
func NewLanguage(spec LanguageSpec) *Language {
	lang := &Language{
		named:     map[string]uint16{},
		anonymous: map[string]uint16{},
		fields:    map[string]uint16{},
		extras:    map[uint16]struct{}{},
		names:     []string{"end"},
	}

	for _, name := range spec.Named {
		if _, ok := lang.named[name]; ok {
			continue
		}
		lang.named[name] = uint16(len(lang.names))
		lang.names = append(lang.names, name)
	}

	for _, name := range spec.Anonymous {
		if _, ok := lang.anonymous[name]; ok {
			continue
		}
		lang.anonymous[name] = uint16(len(lang.names))
		lang.names = append(lang.names, name)
	}

	for idx, name := range spec.Fields {
		lang.fields[name] = uint16(idx + 1)
	}

	for _, name := range spec.Extras {
		id, ok := lang.named[name]
		if ok {
			lang.extras[id] = struct{}{}
		}
	}

	return lang
}

func (lang *Language) IdForNodeKind(kind string, named bool) uint16 {
	if named {
		if kind == "ERROR" {
			return syntax.ErrorKindId
		}
		return lang.named[kind]
	}
	return lang.anonymous[kind]
}

func (lang *Language) FieldIdForName(name string) uint16 {
	return lang.fields[name]
}

func (lang *Language) NodeKindForId(id uint16) string {
	if id == syntax.ErrorKindId {
		return "ERROR"
	}
	if int(id) < len(lang.names) {
		return lang.names[id]
	}
	return ""
}

func (lang *Language) isExtra(id uint16) bool {
	_, ok := lang.extras[id]
	return ok
}
