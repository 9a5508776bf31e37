package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pattyshack/ddlog-lsp/analyzer"
	"github.com/pattyshack/ddlog-lsp/grammar"
	"github.com/pattyshack/ddlog-lsp/languages"
	"github.com/pattyshack/ddlog-lsp/syntax"
	"github.com/pattyshack/ddlog-lsp/workspace"
)

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

		fmt.Println(
			syntax.TreeString(linked.Languages[g], tree.RootNode(), content, ""))

		result := analyzer.Analyze(
			linked.Grammars,
			&analyzer.Entry{
				Name:    fileName,
				Grammar: g,
				Source:  content,
				Root:    tree.RootNode(),
			})
		workspace.CloseTree(tree)

		if len(result.Identifiers) > 0 {
			fmt.Println("---------------------------")
			fmt.Println("Identifiers:")
			fmt.Println("---------------------------")
			for _, identifier := range result.Identifiers {
				declaration := ""
				if identifier.Declaration {
					declaration = " (declaration)"
				}
				fmt.Printf(
					"%s %s %s%s\n",
					identifier.Range,
					identifier.Kind,
					identifier.Name,
					declaration)
			}
		}

		if len(result.Errors) > 0 {
			fmt.Println("---------------------------")
			fmt.Println("Found", len(result.Errors), "errors:")
			fmt.Println("---------------------------")
			for idx, err := range result.Errors {
				fmt.Printf("error %d: %s\n", idx, err)
			}
		}
	}
}
