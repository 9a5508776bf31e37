// Package symbol records the identifiers visitors find in a document.
package symbol

import (
	"fmt"
	"sort"

	"github.com/pattyshack/ddlog-lsp/syntax"
	"github.com/pattyshack/ddlog-lsp/walker"
)

type Kind int

const (
	Type = Kind(iota)
	TypeVariable
	Relation
	Function
	Transformer
	Index
	Constructor
	Field
	Argument
	Variable
)

func (kind Kind) String() string {
	switch kind {
	case Type:
		return "type"
	case TypeVariable:
		return "type variable"
	case Relation:
		return "relation"
	case Function:
		return "function"
	case Transformer:
		return "transformer"
	case Index:
		return "index"
	case Constructor:
		return "constructor"
	case Field:
		return "field"
	case Argument:
		return "argument"
	case Variable:
		return "variable"
	default:
		return fmt.Sprintf("kind(%d)", int(kind))
	}
}

type Identifier struct {
	Kind  Kind
	Name  string
	Range syntax.Range

	// Set when the identifier names the thing being declared rather than
	// referring to it.
	Declaration bool
}

// Recorder accumulates identifiers for a single document.  A node is
// recorded at most once, however often backtracking revisits it.
type Recorder struct {
	source      []byte
	index       map[uintptr]int
	identifiers []Identifier
}

func NewRecorder(source []byte) *Recorder {
	return &Recorder{
		source: source,
		index:  map[uintptr]int{},
	}
}

// Record peeks at the name node visit is about to validate, runs visit, and
// records the node on success.  declares, when non-nil, decides from the
// name's parent kind whether the name is a declaration.
func (recorder *Recorder) Record(
	w *walker.NodeWalker,
	move walker.Move,
	kind Kind,
	declares func(parent uint16) bool,
	visit func(walker.Move) error,
) error {
	node, err := w.Peek(move)
	if err != nil {
		return visit(move)
	}

	err = visit(move)
	if err != nil {
		return err
	}

	declaration := false
	if declares != nil {
		parent := node.Parent()
		declaration = parent != nil && declares(parent.KindId())
	}

	rng := node.Range()
	identifier := Identifier{
		Kind:        kind,
		Name:        recorder.text(rng),
		Range:       rng,
		Declaration: declaration,
	}

	idx, ok := recorder.index[node.Id()]
	if ok {
		recorder.identifiers[idx] = identifier
		return nil
	}

	recorder.index[node.Id()] = len(recorder.identifiers)
	recorder.identifiers = append(recorder.identifiers, identifier)
	return nil
}

func (recorder *Recorder) text(rng syntax.Range) string {
	end := rng.EndByte
	if end > uint32(len(recorder.source)) {
		end = uint32(len(recorder.source))
	}
	if rng.StartByte >= end {
		return ""
	}
	return string(recorder.source[rng.StartByte:end])
}

// Identifiers returns the recorded identifiers in document order.
func (recorder *Recorder) Identifiers() []Identifier {
	result := make([]Identifier, len(recorder.identifiers))
	copy(result, recorder.identifiers)
	sort.SliceStable(result, func(i int, j int) bool {
		return result[i].Range.StartByte < result[j].Range.StartByte
	})
	return result
}

// Declarations filters identifiers down to declarations.
func Declarations(identifiers []Identifier) []Identifier {
	result := []Identifier{}
	for _, identifier := range identifiers {
		if identifier.Declaration {
			result = append(result, identifier)
		}
	}
	return result
}

// KindSet returns a declares function matching any of the given kinds.
func KindSet(kinds ...uint16) func(uint16) bool {
	return func(kind uint16) bool {
		for _, k := range kinds {
			if k == kind {
				return true
			}
		}
		return false
	}
}

// Always is a declares function for names that only occur in declarations.
func Always(uint16) bool {
	return true
}
