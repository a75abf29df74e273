package confluence

import (
	"context"
	"fmt"
	"net/url"

	"conflow/internal/config"
)

// ExportPageAsWord exports a page through the standard word exporter and
// returns the file bytes.
func (c *Client) ExportPageAsWord(ctx context.Context, pageID string) ([]byte, error) {
	params := url.Values{}
	params.Add("pageId", pageID)
	return c.getRaw(ctx, "exportword", params, formTokenHeaders())
}

// ExportPageAsPDF exports a page as PDF and returns the file bytes. On
// the cloud flavor the export runs server-side as a long-running task;
// the returned document is only fetched once the poller resolves its
// download path.
func (c *Client) ExportPageAsPDF(ctx context.Context, pageID string) ([]byte, error) {
	exportPath := "spaces/flyingpdf/pdfpageexport.action?pageId=" + url.QueryEscape(pageID)

	if c.flavor == config.FlavorCloud {
		downloadPath, err := c.PDFExportDownloadURL(ctx, exportPath)
		if err != nil {
			return nil, err
		}
		return c.getRaw(ctx, downloadPath, nil, formTokenHeaders())
	}

	return c.getRaw(ctx, exportPath, nil, formTokenHeaders())
}

// PDFExportDownloadURL initiates a cloud PDF export and polls the
// long-running task until it resolves. It returns the download path of
// the finished artifact, relative to the wiki root.
//
// Still-running states never produce an error. Malformed responses
// (DecodeError/ParseError taxonomy) and server-side export failures end
// the invocation with a typed *ExportError; only transport errors from
// the HTTP client propagate as plain errors. Each invocation is
// self-contained: no state is shared between concurrent exports.
func (c *Client) PDFExportDownloadURL(ctx context.Context, exportPath string) (string, error) {
	c.infof("Initiating PDF export from Confluence Cloud")
	body, err := c.getRaw(ctx, exportPath, nil, formTokenHeaders())
	if err != nil {
		return "", err
	}
	text, err := decodeText(body)
	if err != nil {
		c.errorf("PDF export response undecodable: %v", err)
		return "", err
	}

	taskID, err := parseExportTaskID(text)
	if err != nil {
		c.errorf("PDF export initiation failed: %v", err)
		return "", err
	}
	c.debugf("Export task %s started, polling for completion", taskID)

	pollPath := "runningtaskxml.action?taskId=" + url.QueryEscape(taskID)

	for poll := 0; poll < c.maxPolls; poll++ {
		raw, err := c.getRaw(ctx, pollPath, nil, formTokenHeaders())
		if err != nil {
			return "", err
		}
		doc, err := decodeText(raw)
		if err != nil {
			return "", c.exportFailure(taskID, err)
		}

		status, err := parseTaskStatus(doc)
		if err != nil {
			return "", c.exportFailure(taskID, err)
		}

		if status.complete {
			if status.outcome == outcomeSuccess {
				c.infof("%s", status.percentComplete)
				c.debugf("Export task %s finished, download path %s", taskID, status.downloadPath)
				return status.downloadPath, nil
			}
			c.errorf("PDF conversion not successful for task %s", taskID)
			return "", &ExportError{Kind: ExportFailed, TaskID: taskID, Msg: "server reported export as unsuccessful"}
		}

		c.infof("%s", status.percentComplete)
		if err := c.sleep(ctx, c.pollInterval); err != nil {
			return "", err
		}
	}

	return "", &ExportError{
		Kind:   ExportTimeout,
		TaskID: taskID,
		Msg:    fmt.Sprintf("export did not complete within %d polls", c.maxPolls),
	}
}

// exportFailure tags a decode/parse error with the task it belonged to
// and logs it. The error stays terminal rather than becoming a crash.
func (c *Client) exportFailure(taskID string, err error) error {
	if ee, ok := err.(*ExportError); ok && ee.TaskID == "" {
		ee.TaskID = taskID
	}
	c.errorf("PDF export polling failed: %v", err)
	return err
}
