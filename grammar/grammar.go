package grammar

import (
	"fmt"
	"path/filepath"
)

type Grammar int

const (
	DL = Grammar(iota)
	DAT
)

var Grammars = []Grammar{DL, DAT}

func (g Grammar) String() string {
	switch g {
	case DL:
		return "ddlog.dl"
	case DAT:
		return "ddlog.dat"
	default:
		return fmt.Sprintf("grammar(%d)", int(g))
	}
}

func (g Grammar) Extension() string {
	switch g {
	case DL:
		return ".dl"
	case DAT:
		return ".dat"
	default:
		return ""
	}
}

func FromId(id string) (Grammar, error) {
	for _, g := range Grammars {
		if g.String() == id {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown grammar id %q", id)
}

func FromPath(path string) (Grammar, bool) {
	ext := filepath.Ext(path)
	for _, g := range Grammars {
		if g.Extension() == ext {
			return g, true
		}
	}
	return 0, false
}
