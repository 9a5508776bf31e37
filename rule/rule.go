// Package rule provides the grammar combinators validators are written in.
// Every combinator returns a Rule that runs against the visitor's shared
// walker; backtracking is done with explicit checkpoints.
package rule

import (
	"errors"

	"github.com/pattyshack/ddlog-lsp/syntax"
	"github.com/pattyshack/ddlog-lsp/walker"
)

type Walkable interface {
	Walker() *walker.NodeWalker
}

type Rule[V Walkable] func(visitor V, move walker.Move) error

// Alt is one alternative of a Choice, selected when the next node has the
// given kind.
type Alt[V Walkable] struct {
	Kind uint16
	Rule Rule[V]
}

func Token[V Walkable](kind uint16) Rule[V] {
	return func(visitor V, move walker.Move) error {
		_, err := visitor.Walker().Step(kind, move, walker.StepInto)
		return err
	}
}

// Node steps onto a node of the given kind, then validates its children
// with body.  The body can not move past the node's subtree, and must
// account for all of it.
func Node[V Walkable](kind uint16, body Rule[V]) Rule[V] {
	if body == nil {
		return Token[V](kind)
	}

	return func(visitor V, move walker.Move) error {
		w := visitor.Walker()
		_, err := w.Step(kind, move, walker.StepInto)
		if err != nil {
			return err
		}

		w.Enter()
		defer w.Leave()

		err = body(visitor, walker.Step)
		if err != nil {
			return err
		}

		leftover, err := w.Peek(walker.Step)
		if err == nil {
			return w.Farthest(w.NewDoneError(leftover.Range()))
		}
		return nil
	}
}

func Seq[V Walkable](rules ...Rule[V]) Rule[V] {
	return func(visitor V, move walker.Move) error {
		for idx, r := range rules {
			m := walker.Step
			if idx == 0 {
				m = move
			}

			err := r(visitor, m)
			if err != nil {
				return visitor.Walker().Farthest(err)
			}
		}
		return nil
	}
}

// Choice peeks at the next node and runs the first alternative keyed on
// its kind.
func Choice[V Walkable](alts ...Alt[V]) Rule[V] {
	return func(visitor V, move walker.Move) error {
		w := visitor.Walker()
		next, err := w.Peek(move)
		if err != nil {
			return choiceFailure(w, err, alts)
		}

		kind := next.KindId()
		for _, alt := range alts {
			if alt.Kind == kind {
				return alt.Rule(visitor, move)
			}
		}

		return mismatchChoiceFailure(w, next, alts)
	}
}

func choiceFailure[V Walkable](
	w *walker.NodeWalker,
	err error,
	alts []Alt[V],
) error {
	var syntaxErr *walker.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return err
	}

	tried := make([]walker.Alternative, 0, len(alts))
	for _, alt := range alts {
		tried = append(tried, walker.Alternative{Kind: alt.Kind, Err: syntaxErr})
	}
	return w.NewChoiceError(syntaxErr.Range, tried)
}

func mismatchChoiceFailure[V Walkable](
	w *walker.NodeWalker,
	next syntax.Node,
	alts []Alt[V],
) error {
	tried := make([]walker.Alternative, 0, len(alts))
	for _, alt := range alts {
		tried = append(
			tried,
			walker.Alternative{
				Kind: alt.Kind,
				Err:  w.NewMismatchError(next.Range(), next.KindId(), alt.Kind),
			})
	}
	return w.NewChoiceError(next.Range(), tried)
}

// OneOf accepts any one of the given terminals.
func OneOf[V Walkable](kinds ...uint16) Rule[V] {
	alts := make([]Alt[V], 0, len(kinds))
	for _, kind := range kinds {
		alts = append(alts, Alt[V]{Kind: kind, Rule: Token[V](kind)})
	}
	return Choice(alts...)
}

func Optional[V Walkable](r Rule[V]) Rule[V] {
	return func(visitor V, move walker.Move) error {
		w := visitor.Walker()
		checkpoint := w.Node()
		err := r(visitor, move)
		if err != nil {
			w.NoteFailure(err)
			w.Reset(checkpoint)
		}
		return nil
	}
}

func Repeat[V Walkable](r Rule[V]) Rule[V] {
	return func(visitor V, move walker.Move) error {
		repeat(visitor, r, move)
		return nil
	}
}

func Repeat1[V Walkable](r Rule[V]) Rule[V] {
	return func(visitor V, move walker.Move) error {
		w := visitor.Walker()
		checkpoint := w.Node()
		err := r(visitor, move)
		if err != nil {
			return err
		}
		if syntax.Same(checkpoint, w.Node()) {
			return nil
		}

		repeat(visitor, r, walker.Step)
		return nil
	}
}

// repeat applies r until it fails or stops consuming nodes, leaving the
// walker after the last success.
func repeat[V Walkable](visitor V, r Rule[V], move walker.Move) error {
	w := visitor.Walker()
	for {
		checkpoint := w.Node()
		err := r(visitor, move)
		if err != nil {
			w.NoteFailure(err)
			w.Reset(checkpoint)
			return err
		}
		if syntax.Same(checkpoint, w.Node()) {
			return nil
		}
		move = walker.Step
	}
}

// Eof applies r as often as possible and then requires the walker's scope
// to be exhausted.  A failed attempt that got past the first node of r is
// returned as is.  Leftover input that r can not start on is reported as
// a done-early error at that input, except for error placeholders, which
// fail as a choice of the kind r wanted.
func Eof[V Walkable](r Rule[V]) Rule[V] {
	return func(visitor V, move walker.Move) error {
		w := visitor.Walker()
		for {
			checkpoint := w.Node()
			err := r(visitor, move)
			if err == nil {
				if syntax.Same(checkpoint, w.Node()) {
					err = w.NewDoneError(w.Range())
				} else {
					move = walker.Step
					continue
				}
			}

			w.Reset(checkpoint)
			next, peekErr := w.Peek(move)
			if peekErr != nil {
				return nil
			}

			var syntaxErr *walker.SyntaxError
			if errors.As(err, &syntaxErr) &&
				syntaxErr.Type == walker.NodeMismatchError &&
				syntaxErr.Range == next.Range() {

				if next.IsError() {
					return w.NewChoiceError(
						next.Range(),
						[]walker.Alternative{{Kind: syntaxErr.Wanted, Err: syntaxErr}})
				}
				return w.NewDoneError(next.Range())
			}
			return err
		}
	}
}

// List validates open (item (sep item)* sep?)? close.  After each item the
// next node must be sep or close; anything else is a choice failure
// naming both.
func List[V Walkable](open uint16, sep uint16, close uint16, item Rule[V]) Rule[V] {
	return func(visitor V, move walker.Move) error {
		w := visitor.Walker()
		_, err := w.Step(open, move, walker.StepInto)
		if err != nil {
			return err
		}

		next, err := w.Peek(walker.Step)
		if err != nil {
			return err
		}
		if next.KindId() == close {
			_, err = w.Step(close, walker.Step, walker.StepInto)
			return err
		}

		for {
			err := item(visitor, walker.Step)
			if err != nil {
				return err
			}

			next, err := w.Peek(walker.Step)
			if err != nil {
				return listFailure(w, err, sep, close)
			}

			switch next.KindId() {
			case close:
				_, err = w.Step(close, walker.Step, walker.StepInto)
				return err
			case sep:
				_, err = w.Step(sep, walker.Step, walker.StepInto)
				if err != nil {
					return err
				}

				next, err = w.Peek(walker.Step)
				if err != nil {
					return err
				}
				if next.KindId() == close {
					_, err = w.Step(close, walker.Step, walker.StepInto)
					return err
				}
			default:
				return w.NewChoiceError(
					next.Range(),
					[]walker.Alternative{
						{
							Kind: sep,
							Err:  w.NewMismatchError(next.Range(), next.KindId(), sep),
						},
						{
							Kind: close,
							Err:  w.NewMismatchError(next.Range(), next.KindId(), close),
						},
					})
			}
		}
	}
}

func listFailure(w *walker.NodeWalker, err error, sep uint16, close uint16) error {
	var syntaxErr *walker.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return err
	}
	return w.NewChoiceError(
		syntaxErr.Range,
		[]walker.Alternative{
			{Kind: sep, Err: syntaxErr},
			{Kind: close, Err: syntaxErr},
		})
}
