package confluence

import (
	"strings"
	"unicode/utf8"
)

// The legacy export flow has no structured status API; the server renders
// an HTML/XML fragment meant for a browser polling script. These parsers
// reverse-engineer that fragment's fixed layout. The contract is brittle
// on purpose and kept in one place so it stays unit-testable and
// swappable.

const (
	taskIDMarker    = `name="ajs-taskId" content="`
	taskIDEnd       = `">`
	downloadMarker  = `href=&quot;/wiki/`
	downloadEnd     = `&quot`
	statusLineCount = 9

	statusLineDownload   = 3
	statusLinePercent    = 6
	statusLineSuccessful = 7
	statusLineComplete   = 8
)

// decodeText validates that a raw response body is UTF-8 text.
func decodeText(body []byte) (string, error) {
	if !utf8.Valid(body) {
		return "", &ExportError{Kind: ExportDecode, Msg: "response body is not valid UTF-8"}
	}
	return string(body), nil
}

// parseExportTaskID extracts the task identifier from the page returned
// by the export initiation request. A missing marker means the server
// changed its response shape or the export never started.
func parseExportTaskID(body string) (string, error) {
	start := strings.Index(body, taskIDMarker)
	if start < 0 {
		return "", &ExportError{Kind: ExportParse, Msg: "task ID marker not found in export response"}
	}
	rest := body[start+len(taskIDMarker):]
	end := strings.Index(rest, taskIDEnd)
	if end < 0 {
		return "", &ExportError{Kind: ExportParse, Msg: "task ID not terminated in export response"}
	}
	return rest[:end], nil
}

type taskOutcome int

const (
	outcomeUnknown taskOutcome = iota // still running
	outcomeSuccess
	outcomeFailure
)

// taskStatus is one parsed snapshot of the polled status document. Each
// snapshot is ephemeral; the poller discards it after deciding.
type taskStatus struct {
	percentComplete string
	outcome         taskOutcome
	complete        bool
	downloadPath    string
}

// parseTaskStatus parses the fixed-layout status document. Line indices
// after splitting on newline: 3 carries the download href once finished,
// 6 the display percentage, 7 <isSuccessful>, 8 <isComplete>. Documents
// shorter than that layout are a parse failure, not a crash.
func parseTaskStatus(doc string) (taskStatus, error) {
	lines := strings.Split(doc, "\n")
	if len(lines) < statusLineCount {
		return taskStatus{}, &ExportError{
			Kind: ExportParse,
			Msg:  "status document truncated",
		}
	}

	status := taskStatus{
		percentComplete: strings.TrimSpace(lines[statusLinePercent]),
		complete:        strings.TrimSpace(lines[statusLineComplete]) == "<isComplete>true</isComplete>",
	}

	switch strings.TrimSpace(lines[statusLineSuccessful]) {
	case "<isSuccessful>true</isSuccessful>":
		status.outcome = outcomeSuccess
	case "<isSuccessful>false</isSuccessful>":
		status.outcome = outcomeFailure
	default:
		status.outcome = outcomeUnknown
	}

	// The download path is only present, and only meaningful, on a
	// completed successful task.
	if status.complete && status.outcome == outcomeSuccess {
		path, err := parseDownloadPath(lines[statusLineDownload])
		if err != nil {
			return taskStatus{}, err
		}
		status.downloadPath = path
	}

	return status, nil
}

func parseDownloadPath(line string) (string, error) {
	start := strings.Index(line, downloadMarker)
	if start < 0 {
		return "", &ExportError{Kind: ExportParse, Msg: "download href marker not found in status document"}
	}
	rest := line[start+len(downloadMarker):]
	end := strings.Index(rest, downloadEnd)
	if end < 0 {
		return "", &ExportError{Kind: ExportParse, Msg: "download href not terminated in status document"}
	}
	return rest[:end], nil
}
