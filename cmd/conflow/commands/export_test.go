package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"conflow/internal/confluence"
)

func TestExport_WritesPDF(t *testing.T) {
	mc := confluence.NewMockClient()
	mc.PDFBytes = []byte("%PDF-1.4 exported")

	configFile = writeTempConfig(t)
	verbose = false
	exportPageID = "123456"
	exportFormat = "pdf"
	exportOutput = filepath.Join(t.TempDir(), "out.pdf")

	var out string
	withMockClient(t, mc, func() {
		out = captureStdout(t, func() error { return runExport(exportCmd, nil) })
	})

	data, err := os.ReadFile(exportOutput)
	if err != nil {
		t.Fatalf("expected export file: %v", err)
	}
	if string(data) != "%PDF-1.4 exported" {
		t.Errorf("unexpected file contents: %s", data)
	}
	if !strings.Contains(out, "Exported page 123456") {
		t.Errorf("expected confirmation output, got: %s", out)
	}
}

func TestExport_WritesWord(t *testing.T) {
	mc := confluence.NewMockClient()
	mc.WordBytes = []byte("word bytes")

	configFile = writeTempConfig(t)
	verbose = false
	exportPageID = "123456"
	exportFormat = "word"
	exportOutput = filepath.Join(t.TempDir(), "out.doc")

	withMockClient(t, mc, func() {
		captureStdout(t, func() error { return runExport(exportCmd, nil) })
	})

	data, err := os.ReadFile(exportOutput)
	if err != nil {
		t.Fatalf("expected export file: %v", err)
	}
	if string(data) != "word bytes" {
		t.Errorf("unexpected file contents: %s", data)
	}
}

func TestExport_PropagatesExportError(t *testing.T) {
	mc := confluence.NewMockClient()
	mc.ExportErr = &confluence.ExportError{Kind: confluence.ExportFailed, TaskID: "42", Msg: "server reported export as unsuccessful"}

	configFile = writeTempConfig(t)
	verbose = false
	exportPageID = "123456"
	exportFormat = "pdf"
	exportOutput = filepath.Join(t.TempDir(), "out.pdf")

	withMockClient(t, mc, func() {
		err := runExport(exportCmd, nil)
		if err == nil {
			t.Fatal("expected export error")
		}
		if !confluence.IsExportError(err, confluence.ExportFailed) {
			t.Errorf("expected export failure to surface, got: %v", err)
		}
	})

	if _, err := os.Stat(exportOutput); !os.IsNotExist(err) {
		t.Error("expected no file to be written on failure")
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	configFile = writeTempConfig(t)
	exportPageID = "123456"
	exportFormat = "odt"

	withMockClient(t, confluence.NewMockClient(), func() {
		if err := runExport(exportCmd, nil); err == nil || !strings.Contains(err.Error(), "unsupported export format") {
			t.Errorf("expected unsupported format error, got: %v", err)
		}
	})
}
