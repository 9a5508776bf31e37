package walker

import (
	"errors"

	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/syntax"
)

type StepMode int

const (
	// Try the first child, then the right sibling, then an ancestor's right
	// sibling.
	StepInto = StepMode(iota)

	// Right sibling, then an ancestor's right sibling.
	StepOver
)

type Move int

const (
	// The walker is already on the node to check.
	Init = Move(iota)

	// Advance before checking.
	Step
)

func (move Move) String() string {
	if move == Init {
		return "Init"
	}
	return "Step"
}

// NodeWalker is a preorder cursor over a syntax tree.  Moves never leave the
// innermost entered scope: once the scope node's subtree is exhausted the
// walker is marked done instead.
type NodeWalker struct {
	grammar grammar.Grammar
	lang    syntax.Language
	extras  map[uint16]struct{}

	node   syntax.Node
	done   bool
	scopes []scope
}

type scope struct {
	node syntax.Node

	// The farthest failure swallowed by a backtracking combinator while
	// inside node.
	failure *SyntaxError
}

func New(
	g grammar.Grammar,
	lang syntax.Language,
	root syntax.Node,
	extras ...uint16,
) *NodeWalker {
	walker := &NodeWalker{
		grammar: g,
		lang:    lang,
		extras:  map[uint16]struct{}{},
		node:    root,
		done:    root == nil,
	}
	for _, kind := range extras {
		walker.extras[kind] = struct{}{}
	}
	return walker
}

func (walker *NodeWalker) Grammar() grammar.Grammar {
	return walker.grammar
}

func (walker *NodeWalker) Language() syntax.Language {
	return walker.lang
}

func (walker *NodeWalker) Node() syntax.Node {
	return walker.node
}

func (walker *NodeWalker) Done() bool {
	return walker.done
}

func (walker *NodeWalker) Kind() uint16 {
	if walker.node == nil {
		return 0
	}
	return walker.node.KindId()
}

func (walker *NodeWalker) Range() syntax.Range {
	if walker.node == nil {
		return syntax.Range{}
	}
	return walker.node.Range()
}

func (walker *NodeWalker) IsExtra(kind uint16) bool {
	_, ok := walker.extras[kind]
	return ok
}

// Enter restricts subsequent moves to the current node's subtree until the
// matching Leave.
func (walker *NodeWalker) Enter() {
	walker.scopes = append(walker.scopes, scope{node: walker.node})
}

func (walker *NodeWalker) Leave() {
	walker.scopes = walker.scopes[:len(walker.scopes)-1]
}

func (walker *NodeWalker) boundary() syntax.Node {
	if len(walker.scopes) == 0 {
		return nil
	}
	return walker.scopes[len(walker.scopes)-1].node
}

func (walker *NodeWalker) atBoundary(node syntax.Node) bool {
	boundary := walker.boundary()
	return boundary != nil && syntax.Same(node, boundary)
}

// NoteFailure remembers an error that a backtracking combinator recovered
// from, so that a later failure in the same scope can be reported at the
// farthest point the input was understood to.
func (walker *NodeWalker) NoteFailure(err error) {
	if len(walker.scopes) == 0 {
		return
	}

	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		return
	}

	current := &walker.scopes[len(walker.scopes)-1]
	if current.failure == nil ||
		current.failure.Range.StartByte <= syntaxErr.Range.StartByte {

		current.failure = syntaxErr
	}
}

// Farthest returns the noted failure of the current scope when it lies
// beyond err, and err otherwise.
func (walker *NodeWalker) Farthest(err error) error {
	if len(walker.scopes) == 0 {
		return err
	}

	noted := walker.scopes[len(walker.scopes)-1].failure
	if noted == nil {
		return err
	}

	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		return err
	}

	if noted.Range.StartByte > syntaxErr.Range.StartByte {
		return noted
	}
	return err
}

// Reset returns the cursor to a checkpoint.  The done flag is unchanged.
func (walker *NodeWalker) Reset(node syntax.Node) {
	walker.node = node
}

func (walker *NodeWalker) GotoFirstChild() bool {
	if walker.node == nil {
		return false
	}
	child := walker.node.FirstChild()
	if child == nil {
		return false
	}
	walker.node = child
	walker.done = false
	return true
}

func (walker *NodeWalker) GotoNextSibling() bool {
	if walker.node == nil || walker.atBoundary(walker.node) {
		return false
	}
	sibling := walker.node.NextSibling()
	if sibling == nil {
		return false
	}
	walker.node = sibling
	walker.done = false
	return true
}

func (walker *NodeWalker) GotoParent() bool {
	if walker.node == nil || walker.atBoundary(walker.node) {
		return false
	}
	parent := walker.node.Parent()
	if parent == nil {
		return false
	}
	walker.node = parent
	return true
}

func (walker *NodeWalker) GotoNextAncestorSibling() bool {
	node := walker.node
	for node != nil && !walker.atBoundary(node) {
		node = node.Parent()
		if node == nil || walker.atBoundary(node) {
			break
		}

		sibling := node.NextSibling()
		if sibling != nil {
			walker.node = sibling
			walker.done = false
			return true
		}
	}

	walker.done = true
	return false
}

func (walker *NodeWalker) GotoNext(mode StepMode, skipExtras bool) bool {
	moved := mode == StepInto && walker.GotoFirstChild()
	if !moved {
		moved = walker.GotoNextSibling()
	}
	if !moved {
		moved = walker.GotoNextAncestorSibling()
	}
	if !moved {
		return false
	}

	if skipExtras {
		return walker.SkipExtras()
	}
	return true
}

// SkipExtras moves past comment nodes at the current position.  It is a
// no-op when the current node is not an extra.
func (walker *NodeWalker) SkipExtras() bool {
	for walker.node != nil && walker.IsExtra(walker.node.KindId()) {
		if !walker.GotoNext(StepOver, false) {
			return false
		}
	}
	return walker.node != nil
}

// Step moves (or, for Init, stays) onto the next non-extra node and checks
// its kind.  A missing node resets the cursor; a kind mismatch leaves the
// cursor on the mismatched node for the enclosing combinator to rewind.
func (walker *NodeWalker) Step(
	want uint16,
	move Move,
	mode StepMode,
) (
	syntax.Node,
	error,
) {
	checkpoint := walker.node
	if checkpoint == nil {
		return nil, walker.newError(WalkerMoveError, syntax.Range{})
	}

	if move == Init {
		if !walker.SkipExtras() {
			return nil, walker.exhausted()
		}
	} else if !walker.GotoNext(mode, true) {
		if walker.done {
			return nil, walker.exhausted()
		}
		return nil, walker.newError(WalkerMoveError, checkpoint.Range().End())
	}

	dest := walker.node
	if dest.IsMissing() {
		walker.Reset(checkpoint)
		return nil, walker.newError(NodeMissingError, dest.Range())
	}

	if dest.KindId() != want {
		return nil, walker.NewMismatchError(dest.Range(), dest.KindId(), want)
	}

	return dest, nil
}

// Peek returns the node a Step with the given move would land on, without
// moving the cursor.
func (walker *NodeWalker) Peek(move Move) (syntax.Node, error) {
	checkpoint := walker.node
	if checkpoint == nil {
		return nil, walker.newError(WalkerMoveError, syntax.Range{})
	}
	done := walker.done

	var ok bool
	if move == Init {
		ok = walker.SkipExtras()
	} else {
		ok = walker.GotoNext(StepInto, true)
	}

	dest := walker.node
	var doneErr *SyntaxError
	if !ok {
		doneErr = walker.exhausted()
	}
	walker.node = checkpoint
	walker.done = done

	if doneErr != nil {
		return nil, doneErr
	}
	return dest, nil
}

// exhausted builds the done-early error for the cursor's position.  When no
// input other than comments follows the cursor anywhere in the tree, the
// error sits at the end of the document; otherwise it follows the cursor's
// node.
func (walker *NodeWalker) exhausted() *SyntaxError {
	last := walker.node
	root := last
	for node := last; node != nil; node = node.Parent() {
		for sibling := node.NextSibling(); sibling != nil; sibling = sibling.NextSibling() {
			if !walker.IsExtra(sibling.KindId()) {
				return walker.NewDoneError(last.Range().End())
			}
		}
		root = node
	}
	return walker.NewDoneError(root.Range().End())
}
