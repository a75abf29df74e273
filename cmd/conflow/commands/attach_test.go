package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"conflow/internal/confluence"
)

func TestAttach_UploadsFiles(t *testing.T) {
	mc := confluence.NewMockClient()

	file := filepath.Join(t.TempDir(), "diagram.png")
	if err := os.WriteFile(file, []byte("png"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	configFile = writeTempConfig(t)
	verbose = false
	attachPageID = "123456"

	var out string
	withMockClient(t, mc, func() {
		out = captureStdout(t, func() error { return runAttach(attachCmd, []string{file}) })
	})

	if mc.LastUploadedFile != file {
		t.Errorf("expected upload of %s, got %s", file, mc.LastUploadedFile)
	}
	if len(mc.Attachments["123456"]) != 1 {
		t.Errorf("expected one attachment on page, got %v", mc.Attachments["123456"])
	}
	if !strings.Contains(out, "Uploaded diagram.png") {
		t.Errorf("expected upload confirmation, got: %s", out)
	}
}

func TestAttachments_ListsPageAttachments(t *testing.T) {
	mc := confluence.NewMockClient()
	att := confluence.Attachment{ID: "att1", Title: "diagram.png"}
	att.Metadata.MediaType = "image/png"
	mc.Attachments["123456"] = []confluence.Attachment{att}

	configFile = writeTempConfig(t)
	verbose = false
	attachmentsPageID = "123456"
	attachmentsMediaType = ""

	var out string
	withMockClient(t, mc, func() {
		out = captureStdout(t, func() error { return runAttachments(attachmentsCmd, nil) })
	})

	if !strings.Contains(out, "att1\tdiagram.png\timage/png") {
		t.Errorf("expected attachment line, got: %s", out)
	}
}
