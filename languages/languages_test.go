package languages

import (
	"testing"
)

func TestLinkWithoutBindings(t *testing.T) {
	if len(Registered()) != 0 {
		t.Fatalf("unexpected registered grammars: %v", Registered())
	}

	linked, err := Link()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer linked.Close()

	if len(linked.Parsers) != 0 || len(linked.Languages) != 0 {
		t.Fatalf("unexpected parsers: %v", linked.Parsers)
	}
	if linked.Grammars.DL != nil || linked.Grammars.DAT != nil {
		t.Fatalf("unexpected grammars: %v", linked.Grammars)
	}
}
