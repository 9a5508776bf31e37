package workspace

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/pattyshack/ddlog-lsp/diagnostic"
	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/symbol"
)

func SymbolKind(kind symbol.Kind) protocol.SymbolKind {
	switch kind {
	case symbol.Type:
		return protocol.SymbolKindClass
	case symbol.TypeVariable:
		return protocol.SymbolKindTypeParameter
	case symbol.Relation:
		return protocol.SymbolKindStruct
	case symbol.Function:
		return protocol.SymbolKindFunction
	case symbol.Transformer:
		return protocol.SymbolKindOperator
	case symbol.Index:
		return protocol.SymbolKindKey
	case symbol.Constructor:
		return protocol.SymbolKindConstructor
	case symbol.Field:
		return protocol.SymbolKindField
	default:
		return protocol.SymbolKindVariable
	}
}

// Exported selects the identifiers a document contributes to its outline
// and to workspace symbol search.  Programs contribute their top level
// declarations; command scripts contribute the relations they touch, once
// each.
func Exported(g grammar.Grammar, identifiers []symbol.Identifier) []symbol.Identifier {
	result := []symbol.Identifier{}
	switch g {
	case grammar.DL:
		for _, identifier := range symbol.Declarations(identifiers) {
			switch identifier.Kind {
			case symbol.Type,
				symbol.Relation,
				symbol.Function,
				symbol.Transformer,
				symbol.Index,
				symbol.Constructor:

				result = append(result, identifier)
			}
		}
	case grammar.DAT:
		seen := map[string]struct{}{}
		for _, identifier := range identifiers {
			if identifier.Kind != symbol.Relation {
				continue
			}
			if _, ok := seen[identifier.Name]; ok {
				continue
			}
			seen[identifier.Name] = struct{}{}
			result = append(result, identifier)
		}
	}
	return result
}

func SymbolInformation(
	uri protocol.DocumentUri,
	text diagnostic.Text,
	identifier symbol.Identifier,
) protocol.SymbolInformation {
	return protocol.SymbolInformation{
		Name: identifier.Name,
		Kind: SymbolKind(identifier.Kind),
		Location: protocol.Location{
			URI:   uri,
			Range: diagnostic.RangeToLSP(text, identifier.Range),
		},
	}
}
