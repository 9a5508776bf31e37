// Package analyzer runs the validation passes over parsed documents.
package analyzer

import (
	"runtime"
	"time"

	"github.com/pattyshack/gt/parseutil"
	"github.com/tliron/commonlog"

	"github.com/pattyshack/ddlog-lsp/symbol"
)

var log = commonlog.GetLogger("ddlog-lsp.analyzer")

type Result struct {
	Errors      []error
	Identifiers []symbol.Identifier
}

// Analyze validates entry and collects its identifiers.  The two passes
// run in parallel.
func Analyze(grammars Grammars, entry *Entry) Result {
	start := time.Now()

	emitter := &parseutil.Emitter{}
	collector := CollectIdentifiers(grammars)

	passes := [][]Pass[*Entry]{
		{
			ValidateSyntax(grammars, emitter),
			collector,
		},
	}
	Process(entry, passes, nil)

	result := Result{
		Errors:      emitter.Errors(),
		Identifiers: collector.Identifiers(),
	}

	log.Debugf(
		"%s: %d errors, %d identifiers (%s)",
		entry.Name,
		len(result.Errors),
		len(result.Identifiers),
		time.Since(start))
	return result
}

// AnalyzeAll analyzes every entry, one per available cpu at a time.
// results[i] belongs to entries[i].
func AnalyzeAll(grammars Grammars, entries []*Entry) []Result {
	results := make([]Result, len(entries))

	indices := make([]int, len(entries))
	for idx := range entries {
		indices[idx] = idx
	}

	ParallelProcess(
		indices,
		runtime.GOMAXPROCS(0),
		func(idx int) {
			results[idx] = Analyze(grammars, entries[idx])
		})
	return results
}
