package syntax

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	indent = "  "
)

// TreeString renders the subtree rooted at node as an S-expression in the
// notation accepted by memtree.Parse.
func TreeString(lang Language, node Node, source []byte, indent string) string {
	buffer := &bytes.Buffer{}
	_ = PrintTree(buffer, lang, node, source, indent)
	return buffer.String()
}

func PrintTree(
	output io.Writer,
	lang Language,
	node Node,
	source []byte,
	indent string,
) error {
	printer := &treePrinter{
		lang:   lang,
		source: source,
		indent: indent,
		writer: output,
	}
	printer.print(node)
	return printer.err
}

type treePrinter struct {
	lang   Language
	source []byte
	indent string
	writer io.Writer
	err    error
}

func (printer *treePrinter) write(format string, args ...interface{}) {
	if printer.err != nil {
		return
	}

	if len(args) == 0 {
		_, printer.err = printer.writer.Write([]byte(format))
	} else {
		_, printer.err = fmt.Fprintf(printer.writer, format, args...)
	}
}

func (printer *treePrinter) isNamed(node Node) bool {
	kind := printer.lang.NodeKindForId(node.KindId())
	return printer.lang.IdForNodeKind(kind, true) == node.KindId()
}

func (printer *treePrinter) text(node Node) string {
	rng := node.Range()
	if int(rng.EndByte) > len(printer.source) || rng.StartByte > rng.EndByte {
		return ""
	}
	return string(printer.source[rng.StartByte:rng.EndByte])
}

func (printer *treePrinter) print(node Node) {
	if node == nil {
		return
	}

	kind := printer.lang.NodeKindForId(node.KindId())

	switch {
	case node.IsMissing():
		if printer.isNamed(node) {
			printer.write("(MISSING %s)", kind)
		} else {
			printer.write("(MISSING %s)", strconv.Quote(kind))
		}
		return
	case node.IsError():
		kind = "ERROR"
	case node.FirstChild() == nil:
		printer.leaf(node, kind)
		return
	}

	printer.write("(")
	printer.write(kind)

	outer := printer.indent
	printer.indent += indent
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		printer.write("\n")
		printer.write(printer.indent)
		printer.print(child)
	}
	printer.indent = outer

	printer.write(")")
}

func (printer *treePrinter) leaf(node Node, kind string) {
	text := printer.text(node)
	if !printer.isNamed(node) {
		printer.write(strconv.Quote(text))
		return
	}

	if text == "" || strings.ContainsAny(text, " \t\r\n()\"") {
		printer.write("%s:%s", kind, strconv.Quote(text))
	} else {
		printer.write("%s:%s", kind, text)
	}
}
