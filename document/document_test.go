package document

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/syntax"
)

func position(line uint32, character uint32) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(character),
	}
}

func TestPositionsCountUTF16(t *testing.T) {
	// é is 2 bytes and 1 unit; 𝔸 is 4 bytes and 2 units.
	doc := New("file:///a.dl", grammar.DL, 1, "ab\né𝔸x\n")

	offset, point := doc.BytePosition(position(1, 3))
	if offset != 9 || point != (syntax.Point{Row: 1, Column: 6}) {
		t.Fatalf("unexpected byte position %d %v", offset, point)
	}

	pos := doc.LSPPosition(offset, point)
	if pos != position(1, 3) {
		t.Fatalf("unexpected lsp position %v", pos)
	}

	// Inside a surrogate pair rounds down.
	offset, _ = doc.BytePosition(position(1, 2))
	if offset != 5 {
		t.Fatalf("unexpected byte position %d", offset)
	}
}

func TestBytePositionClamps(t *testing.T) {
	doc := New("file:///a.dl", grammar.DL, 1, "ab\ncd")

	offset, point := doc.BytePosition(position(0, 10))
	if offset != 2 || point != (syntax.Point{Row: 0, Column: 2}) {
		t.Fatalf("unexpected byte position %d %v", offset, point)
	}

	offset, point = doc.BytePosition(position(7, 0))
	if offset != 5 || point != (syntax.Point{Row: 1, Column: 2}) {
		t.Fatalf("unexpected byte position %d %v", offset, point)
	}
}

func TestPoint(t *testing.T) {
	doc := New("file:///a.dl", grammar.DL, 1, "ab\n\ncd")

	expected := map[uint32]syntax.Point{
		0: {Row: 0, Column: 0},
		2: {Row: 0, Column: 2},
		3: {Row: 1, Column: 0},
		4: {Row: 2, Column: 0},
		6: {Row: 2, Column: 2},
		9: {Row: 2, Column: 2},
	}
	for offset, point := range expected {
		if doc.Point(offset) != point {
			t.Fatalf("offset %d: expected %v, found %v", offset, point, doc.Point(offset))
		}
	}
}

func TestApplyIncrementalChange(t *testing.T) {
	doc := New("file:///a.dl", grammar.DL, 1, "typedef A = u8\ntypedef B = u8\n")

	edit, err := doc.ApplyChange(
		&protocol.Range{Start: position(1, 8), End: position(1, 9)},
		"Bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.String() != "typedef A = u8\ntypedef Bar = u8\n" {
		t.Fatalf("unexpected text %q", doc.String())
	}

	expected := syntax.InputEdit{
		StartByte:      23,
		OldEndByte:     24,
		NewEndByte:     26,
		StartPosition:  syntax.Point{Row: 1, Column: 8},
		OldEndPosition: syntax.Point{Row: 1, Column: 9},
		NewEndPosition: syntax.Point{Row: 1, Column: 11},
	}
	if edit != expected {
		t.Fatalf("unexpected edit %+v", edit)
	}
}

func TestApplyChangeAcrossLines(t *testing.T) {
	doc := New("file:///a.dat", grammar.DAT, 1, "start;\ncommit;\n")

	edit, err := doc.ApplyChange(
		&protocol.Range{Start: position(0, 5), End: position(1, 6)},
		"")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.String() != "start;\n" {
		t.Fatalf("unexpected text %q", doc.String())
	}
	if edit.OldEndPosition != (syntax.Point{Row: 1, Column: 6}) ||
		edit.NewEndPosition != (syntax.Point{Row: 0, Column: 5}) {
		t.Fatalf("unexpected edit %+v", edit)
	}

	pos := doc.LSPPosition(7, doc.Point(7))
	if pos != position(1, 0) {
		t.Fatalf("unexpected position %v", pos)
	}
}

func TestApplyFullChange(t *testing.T) {
	doc := New("file:///a.dat", grammar.DAT, 1, "start;\n")

	edit, err := doc.ApplyChange(nil, "commit;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.String() != "commit;" {
		t.Fatalf("unexpected text %q", doc.String())
	}
	if edit.StartByte != 0 || edit.OldEndByte != 7 || edit.NewEndByte != 7 ||
		edit.OldEndPosition != (syntax.Point{Row: 1, Column: 0}) ||
		edit.NewEndPosition != (syntax.Point{Row: 0, Column: 7}) {
		t.Fatalf("unexpected edit %+v", edit)
	}
}

func TestApplyChangeRejectsInvertedRange(t *testing.T) {
	doc := New("file:///a.dl", grammar.DL, 1, "abc")

	_, err := doc.ApplyChange(
		&protocol.Range{Start: position(0, 2), End: position(0, 1)},
		"x")
	if err == nil {
		t.Fatalf("expected error")
	}
	if doc.String() != "abc" {
		t.Fatalf("text should be unchanged, found %q", doc.String())
	}
}
