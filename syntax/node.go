package syntax

import (
	"context"
	"fmt"
)

// Kind id of the parser's builtin ERROR production.
const ErrorKindId = uint16(0xFFFF)

type Language interface {
	// Returns 0 if the grammar has no such kind.
	IdForNodeKind(kind string, named bool) uint16

	// Returns 0 if the grammar has no such field.
	FieldIdForName(name string) uint16

	NodeKindForId(id uint16) string
}

// Node is a read-only handle into a tree owned by the parser.  A nil Node
// means "no node".
type Node interface {
	// Id is unique among the live nodes of a tree.  Two handles to the same
	// node have the same id.
	Id() uintptr

	KindId() uint16
	Range() Range

	IsMissing() bool
	IsError() bool
	HasError() bool
	IsExtra() bool

	Parent() Node
	FirstChild() Node
	NextSibling() Node
}

type Tree interface {
	RootNode() Node
	Edit(InputEdit)
}

type Parser interface {
	// old may be nil.  When old is non-nil it must already reflect every edit
	// applied to src since it was produced.
	Parse(ctx context.Context, src []byte, old Tree) (Tree, error)
}

// Row and Column are zero based; Column counts bytes.
type Point struct {
	Row    uint32
	Column uint32
}

func (point Point) String() string {
	return fmt.Sprintf("%d:%d", point.Row, point.Column)
}

func (point Point) Less(other Point) bool {
	if point.Row != other.Row {
		return point.Row < other.Row
	}
	return point.Column < other.Column
}

type Range struct {
	StartByte  uint32
	EndByte    uint32
	StartPoint Point
	EndPoint   Point
}

func (r Range) String() string {
	return fmt.Sprintf("[%s-%s]", r.StartPoint, r.EndPoint)
}

func (r Range) IsEmpty() bool {
	return r.StartByte == r.EndByte
}

// Contains reports whether other lies within r (inclusive at both ends).
func (r Range) Contains(other Range) bool {
	return r.StartByte <= other.StartByte && other.EndByte <= r.EndByte
}

// End returns the zero-width range at the end of r.
func (r Range) End() Range {
	return Range{
		StartByte:  r.EndByte,
		EndByte:    r.EndByte,
		StartPoint: r.EndPoint,
		EndPoint:   r.EndPoint,
	}
}

type InputEdit struct {
	StartByte      uint32
	OldEndByte     uint32
	NewEndByte     uint32
	StartPosition  Point
	OldEndPosition Point
	NewEndPosition Point
}

// Same reports whether a and b are handles to the same node.
func Same(a Node, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Id() == b.Id()
}
