package confluence

import (
	"errors"
	"fmt"
)

// APIError is returned for any non-2xx REST response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// PageUpdateForbiddenError is returned when the server rejects a page
// update with 403, typically because the page is archived or restricted.
type PageUpdateForbiddenError struct {
	PageID string
	Title  string
	Msg    string
}

func (e *PageUpdateForbiddenError) Error() string {
	return e.Msg
}

// IsPageUpdateForbidden reports whether err is a PageUpdateForbiddenError.
func IsPageUpdateForbidden(err error) bool {
	var forbidden *PageUpdateForbiddenError
	return errors.As(err, &forbidden)
}

// ExportErrorKind classifies terminal export-poller failures.
type ExportErrorKind int

const (
	// ExportDecode: a response body was not valid UTF-8 text.
	ExportDecode ExportErrorKind = iota
	// ExportParse: an expected marker or field was absent, or the status
	// document was shorter than its fixed layout requires.
	ExportParse
	// ExportFailed: the server reported the export as complete but not
	// successful. Distinct from a protocol/parse failure.
	ExportFailed
	// ExportTimeout: the poll budget was exhausted before completion.
	ExportTimeout
)

func (k ExportErrorKind) String() string {
	switch k {
	case ExportDecode:
		return "decode"
	case ExportParse:
		return "parse"
	case ExportFailed:
		return "failed"
	case ExportTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// ExportError is the terminal failure result of an export invocation.
// Malformed status documents surface here rather than as a crash; only
// transport-level errors propagate as plain wrapped errors.
type ExportError struct {
	Kind   ExportErrorKind
	TaskID string
	Msg    string
}

func (e *ExportError) Error() string {
	if e.TaskID != "" {
		return fmt.Sprintf("export %s error (task %s): %s", e.Kind, e.TaskID, e.Msg)
	}
	return fmt.Sprintf("export %s error: %s", e.Kind, e.Msg)
}

// IsExportError reports whether err is an ExportError of the given kind.
func IsExportError(err error, kind ExportErrorKind) bool {
	var ee *ExportError
	return errors.As(err, &ee) && ee.Kind == kind
}
