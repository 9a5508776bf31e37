// Package diagnostic converts syntax errors to LSP diagnostics.
package diagnostic

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/pattyshack/ddlog-lsp/syntax"
	"github.com/pattyshack/ddlog-lsp/walker"
)

const Source = "ddlog-lsp"

// Text maps between parser positions (byte offsets, byte columns) and LSP
// positions (UTF-16 columns).
type Text interface {
	LSPPosition(offset uint32, point syntax.Point) protocol.Position
	BytePosition(position protocol.Position) (uint32, syntax.Point)
}

func RangeToLSP(text Text, rng syntax.Range) protocol.Range {
	return protocol.Range{
		Start: text.LSPPosition(rng.StartByte, rng.StartPoint),
		End:   text.LSPPosition(rng.EndByte, rng.EndPoint),
	}
}

func RangeFromLSP(text Text, rng protocol.Range) syntax.Range {
	startByte, startPoint := text.BytePosition(rng.Start)
	endByte, endPoint := text.BytePosition(rng.End)
	return syntax.Range{
		StartByte:  startByte,
		EndByte:    endByte,
		StartPoint: startPoint,
		EndPoint:   endPoint,
	}
}

func FromSyntaxError(
	uri protocol.DocumentUri,
	text Text,
	err *walker.SyntaxError,
) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := Source
	rng := RangeToLSP(text, err.Range)

	diagnostic := protocol.Diagnostic{
		Range:    rng,
		Severity: &severity,
		Source:   &source,
		Message:  err.Message(),
	}

	if err.Type == walker.NodeMismatchError {
		location := protocol.Location{URI: uri, Range: rng}
		diagnostic.RelatedInformation = []protocol.DiagnosticRelatedInformation{
			{
				Location: location,
				Message:  "found: " + err.FoundName(),
			},
			{
				Location: location,
				Message:  "expected: " + err.WantedName(),
			},
		}
	}

	return diagnostic
}

// FromError converts err to a diagnostic.  Errors that do not carry a
// syntax range are reported at the start of the document.
func FromError(
	uri protocol.DocumentUri,
	text Text,
	err error,
) protocol.Diagnostic {
	var syntaxErr *walker.SyntaxError
	if errors.As(err, &syntaxErr) {
		return FromSyntaxError(uri, text, syntaxErr)
	}

	severity := protocol.DiagnosticSeverityError
	source := Source
	return protocol.Diagnostic{
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}
}
