package walker

import (
	"fmt"
	"strings"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/syntax"
)

type ErrorType int

const (
	ChoiceError = ErrorType(iota)
	WalkerDoneError
	WalkerMoveError
	NodeMismatchError
	NodeMissingError
)

func (t ErrorType) String() string {
	switch t {
	case ChoiceError:
		return "ChoiceError"
	case WalkerDoneError:
		return "WalkerDoneError"
	case WalkerMoveError:
		return "WalkerMoveError"
	case NodeMismatchError:
		return "NodeMismatchError"
	case NodeMissingError:
		return "NodeMissingError"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(t))
	}
}

// One alternative tried by a failed choice.
type Alternative struct {
	Kind uint16
	Err  *SyntaxError
}

type SyntaxError struct {
	Type    ErrorType
	Grammar grammar.Grammar
	Lang    syntax.Language
	Range   syntax.Range

	Alternatives []Alternative // ChoiceError

	Found  uint16 // NodeMismatchError
	Wanted uint16 // NodeMismatchError

	// Opaque payload for visitors that attach their own context.
	Data any
}

var _ error = &SyntaxError{}
var _ parseutil.Locatable = &SyntaxError{}

func location(point syntax.Point) parseutil.Location {
	return parseutil.Location{
		Line:   int(point.Row) + 1,
		Column: int(point.Column),
	}
}

func (err *SyntaxError) Loc() parseutil.Location {
	return location(err.Range.StartPoint)
}

func (err *SyntaxError) End() parseutil.Location {
	return location(err.Range.EndPoint)
}

func (err *SyntaxError) StartEnd() parseutil.StartEndPos {
	return parseutil.NewStartEndPos(err.Loc(), err.End())
}

// As lets parseutil.Emitter order syntax errors by position.
func (err *SyntaxError) As(target any) bool {
	locErr, ok := target.(*parseutil.LocationError)
	if !ok {
		return false
	}
	*locErr = parseutil.LocationError{Loc: err.Loc(), Err: err}
	return true
}

func (err *SyntaxError) kindName(id uint16) string {
	if err.Lang == nil {
		return fmt.Sprintf("kind(%d)", id)
	}
	return grammar.KindName(err.Lang, id)
}

// Expected returns the names of the kinds a choice failure would have
// accepted, in the order they were tried.
func (err *SyntaxError) Expected() []string {
	names := make([]string, 0, len(err.Alternatives))
	for _, alt := range err.Alternatives {
		names = append(names, err.kindName(alt.Kind))
	}
	return names
}

func (err *SyntaxError) FoundName() string {
	return err.kindName(err.Found)
}

func (err *SyntaxError) WantedName() string {
	return err.kindName(err.Wanted)
}

func (err *SyntaxError) Message() string {
	switch err.Type {
	case ChoiceError:
		return "syntax error: expected one of [" +
			strings.Join(err.Expected(), ", ") + "]"
	case WalkerMoveError:
		return "syntax error: internal error (failed to move to next node)"
	case WalkerDoneError:
		return "syntax error: internal error (parsing terminated too early)"
	case NodeMissingError:
		return "SyntaxErrorType::NodeMissingError"
	case NodeMismatchError:
		return "syntax node mismatch error"
	default:
		return "syntax error"
	}
}

func (err *SyntaxError) Error() string {
	msg := fmt.Sprintf("%s:%s: %s", err.Grammar, err.Range, err.Message())
	if err.Type == NodeMismatchError {
		msg += fmt.Sprintf(
			" (found %s, expected %s)",
			err.FoundName(),
			err.WantedName())
	}
	return msg
}

func (walker *NodeWalker) newError(errType ErrorType, rng syntax.Range) *SyntaxError {
	return &SyntaxError{
		Type:    errType,
		Grammar: walker.grammar,
		Lang:    walker.lang,
		Range:   rng,
	}
}

func (walker *NodeWalker) NewChoiceError(
	rng syntax.Range,
	alternatives []Alternative,
) *SyntaxError {
	err := walker.newError(ChoiceError, rng)
	err.Alternatives = alternatives
	return err
}

func (walker *NodeWalker) NewMismatchError(
	rng syntax.Range,
	found uint16,
	wanted uint16,
) *SyntaxError {
	err := walker.newError(NodeMismatchError, rng)
	err.Found = found
	err.Wanted = wanted
	return err
}

func (walker *NodeWalker) NewDoneError(rng syntax.Range) *SyntaxError {
	return walker.newError(WalkerDoneError, rng)
}
