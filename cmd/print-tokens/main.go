package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/languages"
	"github.com/pattyshack/ddlog-lsp/syntax"
	"github.com/pattyshack/ddlog-lsp/workspace"
)

func printTokens(lang syntax.Language, node syntax.Node, content []byte) {
	if node.FirstChild() == nil {
		rng := node.Range()
		kind := grammar.KindName(lang, node.KindId())
		switch {
		case node.IsMissing():
			fmt.Printf("%s MISSING %s\n", rng, kind)
		case node.IsError():
			fmt.Printf("%s ERROR\n", rng)
		default:
			fmt.Printf(
				"%s %s %q\n",
				rng,
				kind,
				content[rng.StartByte:rng.EndByte])
		}
		return
	}

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		printTokens(lang, child, content)
	}
}

func main() {
	linked, err := languages.Link()
	if err != nil {
		fmt.Println("Link error:", err)
		os.Exit(1)
	}
	defer linked.Close()

	for _, fileName := range os.Args[1:] {
		fmt.Println("=====================")
		fmt.Println("File name:", fileName)
		fmt.Println("---------------------")

		g, ok := grammar.FromPath(fileName)
		if !ok {
			fmt.Println("Unknown file extension")
			continue
		}

		parser, ok := linked.Parsers[g]
		if !ok {
			fmt.Println("No", g, "parser linked in")
			continue
		}

		content, err := os.ReadFile(fileName)
		if err != nil {
			fmt.Println("ReadFile error:", err)
			continue
		}

		tree, err := parser.Parse(context.Background(), content, nil)
		if err != nil {
			fmt.Println("Parse error:", err)
			continue
		}

		printTokens(linked.Languages[g], tree.RootNode(), content)
		workspace.CloseTree(tree)
	}
}
