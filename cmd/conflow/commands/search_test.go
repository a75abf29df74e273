package commands

import (
	"strings"
	"testing"

	"conflow/internal/confluence"
)

func TestSearch_PrintsHits(t *testing.T) {
	mc := confluence.NewMockClient()
	hit := confluence.SearchHit{Title: "Runbook"}
	hit.Content.ID = "55"
	mc.SearchHits = []confluence.SearchHit{hit}

	configFile = writeTempConfig(t)
	verbose = false
	searchLimit = 25

	var out string
	withMockClient(t, mc, func() {
		out = captureStdout(t, func() error { return runSearch(searchCmd, []string{`text ~ "runbook"`}) })
	})

	if mc.LastCQL != `text ~ "runbook"` {
		t.Errorf("expected CQL to pass through verbatim, got: %s", mc.LastCQL)
	}
	if !strings.Contains(out, "55\tRunbook") {
		t.Errorf("expected hit line, got: %s", out)
	}
	if !strings.Contains(out, "1 of 1 results") {
		t.Errorf("expected result summary, got: %s", out)
	}
}
