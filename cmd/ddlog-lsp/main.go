package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/pattyshack/ddlog-lsp/config"
	"github.com/pattyshack/ddlog-lsp/languages"
	"github.com/pattyshack/ddlog-lsp/server"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to ddlog-lsp.yaml")
	printVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(server.Name, version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var logFile *string
	if cfg.Log.File != "" {
		logFile = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, logFile)

	log := commonlog.GetLogger("ddlog-lsp")

	linked, err := languages.Link()
	if err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
	defer linked.Close()

	registered := languages.Registered()
	if len(registered) == 0 {
		log.Warning("no tree-sitter grammars linked in; documents are not checked")
	}
	for _, g := range registered {
		log.Infof("linked %s", g)
	}

	s := server.New(server.Options{
		Config:   cfg,
		Version:  version,
		Parsers:  linked.Parsers,
		Grammars: linked.Grammars,
	})

	err = s.RunStdio()
	if err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}
