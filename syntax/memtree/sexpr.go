package memtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pattyshack/ddlog-lsp/syntax"
)

// Parse builds a tree over source from an S-expression:
//
//	(kind child...)     named node
//	"text"              anonymous leaf; its kind is its text
//	kind:text           named leaf (kind:"text" when text has spaces)
//	(MISSING kind)      zero-width missing node ((MISSING ",") for anonymous)
//	(ERROR child...)    error node
//
// Leaf ranges are located by searching source left to right, so leaves
// must be listed in source order.  The outermost node spans all of source.
func Parse(lang *Language, source string, sexpr string) (*Tree, error) {
	builder := &builder{
		lang:   lang,
		source: source,
		lines:  lineStarts(source),
		scanner: &scanner{
			input: sexpr,
		},
	}

	root, err := builder.parseExpr()
	if err != nil {
		return nil, err
	}

	tok, err := builder.scanner.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokEOF {
		return nil, fmt.Errorf("unexpected %q after root node", tok.text)
	}

	root.rng = builder.rangeOf(0, uint32(len(source)))
	builder.link(root, nil)

	return &Tree{Lang: lang, root: root}, nil
}

func MustParse(lang *Language, source string, sexpr string) *Tree {
	tree, err := Parse(lang, source, sexpr)
	if err != nil {
		panic(err)
	}
	return tree
}

type builder struct {
	lang    *Language
	source  string
	lines   []uint32
	pos     uint32
	nextId  uintptr
	scanner *scanner
}

func (builder *builder) newNode(kind uint16) *Node {
	builder.nextId++
	return &Node{
		id:    builder.nextId,
		kind:  kind,
		extra: builder.lang.isExtra(kind),
	}
}

func (builder *builder) parseExpr() (*Node, error) {
	tok, err := builder.scanner.next()
	if err != nil {
		return nil, err
	}

	switch tok.kind {
	case tokString:
		return builder.leaf(tok.text, false, tok.text)
	case tokAtom:
		kind, text, ok := strings.Cut(tok.text, ":")
		if !ok || kind == "" {
			return nil, fmt.Errorf("expected kind:text, found %q", tok.text)
		}
		if text == "" {
			// kind:"quoted text"
			quoted, err := builder.scanner.next()
			if err != nil {
				return nil, err
			}
			if quoted.kind != tokString {
				return nil, fmt.Errorf("expected text after %q", tok.text)
			}
			text = quoted.text
		}
		return builder.leaf(kind, true, text)
	case tokOpen:
		return builder.parseList()
	default:
		return nil, fmt.Errorf("unexpected %q", tok.text)
	}
}

func (builder *builder) parseList() (*Node, error) {
	head, err := builder.scanner.next()
	if err != nil {
		return nil, err
	}
	if head.kind != tokAtom {
		return nil, fmt.Errorf("expected node kind, found %q", head.text)
	}

	if head.text == "MISSING" {
		return builder.parseMissing()
	}

	var node *Node
	if head.text == "ERROR" {
		node = builder.newNode(syntax.ErrorKindId)
		node.isError = true
	} else {
		id := builder.lang.IdForNodeKind(head.text, true)
		if id == 0 {
			return nil, fmt.Errorf("unknown named kind %q", head.text)
		}
		node = builder.newNode(id)
	}

	for {
		if builder.scanner.peekClose() {
			_, err := builder.scanner.next()
			if err != nil {
				return nil, err
			}
			break
		}

		child, err := builder.parseExpr()
		if err != nil {
			return nil, err
		}
		node.children = append(node.children, child)
	}

	if len(node.children) == 0 {
		node.rng = builder.rangeOf(builder.pos, builder.pos)
	} else {
		node.rng = builder.rangeOf(
			node.children[0].rng.StartByte,
			node.children[len(node.children)-1].rng.EndByte)
	}
	return node, nil
}

func (builder *builder) parseMissing() (*Node, error) {
	tok, err := builder.scanner.next()
	if err != nil {
		return nil, err
	}

	var id uint16
	switch tok.kind {
	case tokAtom:
		id = builder.lang.IdForNodeKind(tok.text, true)
	case tokString:
		id = builder.lang.IdForNodeKind(tok.text, false)
	}
	if id == 0 {
		return nil, fmt.Errorf("unknown missing kind %q", tok.text)
	}

	closing, err := builder.scanner.next()
	if err != nil {
		return nil, err
	}
	if closing.kind != tokClose {
		return nil, fmt.Errorf("expected ')' after MISSING %s", tok.text)
	}

	node := builder.newNode(id)
	node.missing = true
	node.rng = builder.rangeOf(builder.pos, builder.pos)
	return node, nil
}

func (builder *builder) leaf(kind string, named bool, text string) (*Node, error) {
	id := builder.lang.IdForNodeKind(kind, named)
	if id == 0 {
		return nil, fmt.Errorf("unknown kind %q (named=%v)", kind, named)
	}

	idx := strings.Index(builder.source[builder.pos:], text)
	if idx < 0 {
		return nil, fmt.Errorf(
			"leaf text %q not found after offset %d",
			text,
			builder.pos)
	}

	start := builder.pos + uint32(idx)
	end := start + uint32(len(text))
	builder.pos = end

	node := builder.newNode(id)
	node.rng = builder.rangeOf(start, end)
	return node, nil
}

func (builder *builder) link(node *Node, parent *Node) {
	node.parent = parent
	for idx, child := range node.children {
		if idx+1 < len(node.children) {
			child.next = node.children[idx+1]
		}
		builder.link(child, node)
	}
}

func (builder *builder) rangeOf(start uint32, end uint32) syntax.Range {
	return syntax.Range{
		StartByte:  start,
		EndByte:    end,
		StartPoint: builder.point(start),
		EndPoint:   builder.point(end),
	}
}

func (builder *builder) point(offset uint32) syntax.Point {
	row := 0
	for row+1 < len(builder.lines) && builder.lines[row+1] <= offset {
		row++
	}
	return syntax.Point{
		Row:    uint32(row),
		Column: offset - builder.lines[row],
	}
}

func lineStarts(source string) []uint32 {
	starts := []uint32{0}
	for idx := 0; idx < len(source); idx++ {
		if source[idx] == '\n' {
			starts = append(starts, uint32(idx+1))
		}
	}
	return starts
}

type tokenKind int

const (
	tokEOF = tokenKind(iota)
	tokOpen
	tokClose
	tokString
	tokAtom
)

type token struct {
	kind tokenKind
	text string
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) skipSpaces() {
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) peekClose() bool {
	s.skipSpaces()
	return s.pos < len(s.input) && s.input[s.pos] == ')'
}

func (s *scanner) next() (token, error) {
	s.skipSpaces()
	if s.pos >= len(s.input) {
		return token{kind: tokEOF}, nil
	}

	switch s.input[s.pos] {
	case '(':
		s.pos++
		return token{kind: tokOpen, text: "("}, nil
	case ')':
		s.pos++
		return token{kind: tokClose, text: ")"}, nil
	case '"':
		return s.quoted()
	}

	start := s.pos
	for s.pos < len(s.input) {
		char := s.input[s.pos]
		if char == ' ' || char == '\t' || char == '\n' || char == '\r' ||
			char == '(' || char == ')' {
			break
		}
		if char == '"' {
			// kind:"text" is split into an atom and a string
			break
		}
		s.pos++
	}
	return token{kind: tokAtom, text: s.input[start:s.pos]}, nil
}

func (s *scanner) quoted() (token, error) {
	start := s.pos
	s.pos++
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case '"':
			s.pos++
			text, err := strconv.Unquote(s.input[start:s.pos])
			if err != nil {
				return token{}, fmt.Errorf(
					"invalid string %s: %w",
					s.input[start:s.pos],
					err)
			}
			return token{kind: tokString, text: text}, nil
		}
		s.pos++
	}
	return token{}, fmt.Errorf("unterminated string at offset %d", start)
}
