// Package document holds the text of an open document and converts
// between parser positions and LSP positions.
package document

import (
	"fmt"
	"sort"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/pattyshack/ddlog-lsp/diagnostic"
	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/syntax"
)

type Document struct {
	URI     protocol.DocumentUri
	Grammar grammar.Grammar
	Version protocol.Integer

	text  []byte
	lines []uint32 // byte offset of each line start
}

var _ diagnostic.Text = &Document{}

func New(
	uri protocol.DocumentUri,
	g grammar.Grammar,
	version protocol.Integer,
	text string,
) *Document {
	doc := &Document{
		URI:     uri,
		Grammar: g,
		Version: version,
	}
	doc.setText([]byte(text))
	return doc
}

func (doc *Document) Text() []byte {
	return doc.text
}

func (doc *Document) String() string {
	return string(doc.text)
}

// Snapshot returns a copy that later changes to doc do not affect.
func (doc *Document) Snapshot() *Document {
	return &Document{
		URI:     doc.URI,
		Grammar: doc.Grammar,
		Version: doc.Version,
		text:    doc.text,
		lines:   append([]uint32(nil), doc.lines...),
	}
}

func (doc *Document) setText(text []byte) {
	doc.text = text
	doc.lines = doc.lines[:0]
	doc.lines = append(doc.lines, 0)
	for idx, char := range text {
		if char == '\n' {
			doc.lines = append(doc.lines, uint32(idx+1))
		}
	}
}

// lineEnd returns the offset of row's terminating newline, or the end of
// the document for the last line.
func (doc *Document) lineEnd(row uint32) uint32 {
	if int(row)+1 < len(doc.lines) {
		return doc.lines[row+1] - 1
	}
	return uint32(len(doc.text))
}

// Point returns the row and byte column of offset.  Offsets past the end
// are clamped.
func (doc *Document) Point(offset uint32) syntax.Point {
	if offset > uint32(len(doc.text)) {
		offset = uint32(len(doc.text))
	}

	row := sort.Search(len(doc.lines), func(idx int) bool {
		return doc.lines[idx] > offset
	}) - 1

	return syntax.Point{
		Row:    uint32(row),
		Column: offset - doc.lines[row],
	}
}

func (doc *Document) LSPPosition(
	offset uint32,
	point syntax.Point,
) protocol.Position {
	if int(point.Row) >= len(doc.lines) {
		point = doc.Point(offset)
	}

	start := doc.lines[point.Row]
	end := start + point.Column
	if lineEnd := doc.lineEnd(point.Row); end > lineEnd {
		end = lineEnd
	}

	character := 0
	for _, char := range string(doc.text[start:end]) {
		character += utf16.RuneLen(char)
	}

	return protocol.Position{
		Line:      protocol.UInteger(point.Row),
		Character: protocol.UInteger(character),
	}
}

// BytePosition returns the offset and point of an LSP position.  Lines
// past the end map to the end of the document; characters past the end of
// a line map to the end of that line.
func (doc *Document) BytePosition(
	position protocol.Position,
) (
	uint32,
	syntax.Point,
) {
	if int(position.Line) >= len(doc.lines) {
		end := uint32(len(doc.text))
		return end, doc.Point(end)
	}

	row := uint32(position.Line)
	offset := doc.lines[row]
	lineEnd := doc.lineEnd(row)

	remaining := int(position.Character)
	for offset < lineEnd && remaining > 0 {
		char, size := utf8.DecodeRune(doc.text[offset:lineEnd])
		units := utf16.RuneLen(char)
		if units > remaining {
			break
		}
		remaining -= units
		offset += uint32(size)
	}

	return offset, syntax.Point{Row: row, Column: offset - doc.lines[row]}
}

// ApplyChange replaces the text in rng with text, or the whole document
// when rng is nil, and returns the corresponding tree edit.
func (doc *Document) ApplyChange(
	rng *protocol.Range,
	text string,
) (
	syntax.InputEdit,
	error,
) {
	var start, oldEnd uint32
	var startPoint, oldEndPoint syntax.Point
	if rng == nil {
		oldEnd = uint32(len(doc.text))
		oldEndPoint = doc.Point(oldEnd)
	} else {
		start, startPoint = doc.BytePosition(rng.Start)
		oldEnd, oldEndPoint = doc.BytePosition(rng.End)
		if oldEnd < start {
			return syntax.InputEdit{}, fmt.Errorf(
				"invalid change range %d:%d-%d:%d",
				rng.Start.Line,
				rng.Start.Character,
				rng.End.Line,
				rng.End.Character)
		}
	}

	updated := make([]byte, 0, len(doc.text)-int(oldEnd-start)+len(text))
	updated = append(updated, doc.text[:start]...)
	updated = append(updated, text...)
	updated = append(updated, doc.text[oldEnd:]...)
	doc.setText(updated)

	newEnd := start + uint32(len(text))
	return syntax.InputEdit{
		StartByte:      start,
		OldEndByte:     oldEnd,
		NewEndByte:     newEnd,
		StartPosition:  startPoint,
		OldEndPosition: oldEndPoint,
		NewEndPosition: doc.Point(newEnd),
	}, nil
}
