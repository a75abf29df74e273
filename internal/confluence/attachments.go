package confluence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Attachment struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Metadata struct {
		MediaType string `json:"mediaType"`
	} `json:"metadata,omitempty"`
	Version struct {
		Number int `json:"number"`
	} `json:"version,omitempty"`
	Links struct {
		Download string `json:"download"`
	} `json:"_links,omitempty"`
}

// contentTypes maps file extensions to the MIME type sent on upload.
var contentTypes = map[string]string{
	".gif":  "image/gif",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".xls":  "application/vnd.ms-excel",
	".svg":  "image/svg+xml",
}

const defaultContentType = "application/binary"

// AttachmentListOptions filters ListAttachments.
type AttachmentListOptions struct {
	Filename  string
	MediaType string
	Start     int
	Limit     int
	Expand    string
}

func (c *Client) ListAttachments(pageID string, opts AttachmentListOptions) ([]Attachment, error) {
	params := url.Values{}
	if opts.Filename != "" {
		params.Add("filename", opts.Filename)
	}
	if opts.MediaType != "" {
		params.Add("mediaType", opts.MediaType)
	}
	if opts.Start > 0 {
		params.Add("start", strconv.Itoa(opts.Start))
	}
	if opts.Limit > 0 {
		params.Add("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Expand != "" {
		params.Add("expand", opts.Expand)
	}

	var result struct {
		Results []Attachment `json:"results"`
	}
	if err := c.doJSON(http.MethodGet, "rest/api/content/"+pageID+"/child/attachment", params, nil, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (c *Client) findAttachmentByFilename(pageID, filename string) (*Attachment, error) {
	attachments, err := c.ListAttachments(pageID, AttachmentListOptions{Filename: filename})
	if err != nil {
		return nil, err
	}
	if len(attachments) == 0 {
		return nil, fmt.Errorf("attachment with filename '%s' not found on page %s", filename, pageID)
	}
	return &attachments[0], nil
}

// UploadAttachment uploads the file at filePath to the page. When an
// attachment with the same filename already exists, a new version of it
// is created instead of a second attachment.
func (c *Client) UploadAttachment(pageID, filePath string) (*Attachment, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment file: %w", err)
	}

	name := filepath.Base(filePath)
	contentType := contentTypes[strings.ToLower(filepath.Ext(name))]
	if contentType == "" {
		contentType = defaultContentType
	}

	path := "rest/api/content/" + pageID + "/child/attachment"
	existing, err := c.ListAttachments(pageID, AttachmentListOptions{Filename: name})
	if err != nil {
		return nil, fmt.Errorf("failed to check existing attachments: %w", err)
	}
	if len(existing) > 0 {
		c.debugf("Attachment '%s' exists on page %s, uploading new version", name, pageID)
		path = path + "/" + existing[0].ID + "/data"
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.WriteField("comment", fmt.Sprintf("Uploaded %s.", name)); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.WriteField("minorEdit", "true"); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.url(path), &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.apiToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Atlassian-Token", "no-check")
	req.Header.Set("Accept", "application/json")
	c.debugf("Uploading attachment '%s' (%s, %d bytes) to page %s", name, contentType, len(data), pageID)

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	// Fresh uploads answer with a results envelope; version uploads with
	// the attachment itself.
	var envelope struct {
		Results []Attachment `json:"results"`
		Attachment
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(envelope.Results) > 0 {
		return &envelope.Results[0], nil
	}
	return &envelope.Attachment, nil
}

// AttachmentDownloadURL resolves an attachment ID to an absolute
// download URL.
func (c *Client) AttachmentDownloadURL(pageID, attachmentID string) (string, error) {
	attachments, err := c.ListAttachments(pageID, AttachmentListOptions{})
	if err != nil {
		return "", err
	}
	for _, att := range attachments {
		if att.ID == attachmentID {
			if att.Links.Download == "" {
				return "", fmt.Errorf("attachment %s has no download link", attachmentID)
			}
			return c.baseURL + att.Links.Download, nil
		}
	}
	return "", fmt.Errorf("attachment %s not found on page %s", attachmentID, pageID)
}

// DeleteAttachment removes a file via the legacy action endpoint. When
// version is zero the whole attachment is removed, otherwise only that
// version.
func (c *Client) DeleteAttachment(pageID, filename string, version int) error {
	params := url.Values{}
	params.Add("pageId", pageID)
	params.Add("fileName", filename)
	if version > 0 {
		params.Add("version", strconv.Itoa(version))
	}

	req, err := c.newRequest(context.Background(), http.MethodPost, "json/removeattachment.action", params, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Atlassian-Token", "no-check")

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}
