package commands

import (
	"strings"
	"testing"

	"conflow/internal/confluence"
)

func TestLabels_List(t *testing.T) {
	mc := confluence.NewMockClient()
	mc.Labels["1"] = []confluence.Label{
		{Prefix: "global", Name: "docs"},
		{Prefix: "global", Name: "runbook"},
	}

	configFile = writeTempConfig(t)
	verbose = false
	labelsPageID = "1"
	labelAdd = ""
	labelRemove = ""

	var out string
	withMockClient(t, mc, func() {
		out = captureStdout(t, func() error { return runLabels(labelsCmd, nil) })
	})

	if !strings.Contains(out, "docs") || !strings.Contains(out, "runbook") {
		t.Errorf("expected label names, got: %s", out)
	}
}

func TestLabels_Add(t *testing.T) {
	mc := confluence.NewMockClient()

	configFile = writeTempConfig(t)
	verbose = false
	labelsPageID = "1"
	labelAdd = "howto"
	labelRemove = ""

	withMockClient(t, mc, func() {
		captureStdout(t, func() error { return runLabels(labelsCmd, nil) })
	})

	labels := mc.Labels["1"]
	if len(labels) != 1 || labels[0].Name != "howto" {
		t.Errorf("expected label added, got %v", labels)
	}
}

func TestLabels_Remove(t *testing.T) {
	mc := confluence.NewMockClient()
	mc.Labels["1"] = []confluence.Label{{Prefix: "global", Name: "stale"}}

	configFile = writeTempConfig(t)
	verbose = false
	labelsPageID = "1"
	labelAdd = ""
	labelRemove = "stale"

	withMockClient(t, mc, func() {
		captureStdout(t, func() error { return runLabels(labelsCmd, nil) })
	})

	if len(mc.Labels["1"]) != 0 {
		t.Errorf("expected label removed, got %v", mc.Labels["1"])
	}
}
