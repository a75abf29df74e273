package confluence

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type Page struct {
	ID    string `json:"id,omitempty"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title"`
	Body  struct {
		Storage struct {
			Value string `json:"value"`
		} `json:"storage"`
	} `json:"body,omitempty"`
	Space struct {
		Key string `json:"key"`
	} `json:"space,omitempty"`
	Version struct {
		Number int `json:"number"`
	} `json:"version,omitempty"`
	Links struct {
		Base   string `json:"base"`
		TinyUI string `json:"tinyui"`
	} `json:"_links,omitempty"`
}

type PageInfo struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Children []PageInfo `json:"children,omitempty"`
}

// History is the content history record; LastUpdated.Number is the
// current version.
type History struct {
	Latest      bool `json:"latest"`
	LastUpdated struct {
		Number int `json:"number"`
	} `json:"lastUpdated"`
}

// PageQuery holds the optional parameters accepted by GetPageWithOptions.
type PageQuery struct {
	Expand  string
	Status  string
	Version int
}

// ListOptions holds pagination and filter parameters for space listings.
type ListOptions struct {
	Start       int
	Limit       int
	Status      string
	Expand      string
	ContentType string
}

func newPagePayload(spaceKey, title, content string) map[string]interface{} {
	return map[string]interface{}{
		"type":  "page",
		"title": title,
		"space": map[string]string{"key": spaceKey},
		"body": map[string]interface{}{
			"storage": map[string]interface{}{
				"value":          content,
				"representation": "storage",
			},
		},
	}
}

func (c *Client) CreatePage(spaceKey, title, content string) (*Page, error) {
	return c.CreatePageWithParent(spaceKey, title, content, "")
}

func (c *Client) CreatePageWithParent(spaceKey, title, content, parentID string) (*Page, error) {
	c.infof("Creating page \"%s\" -> \"%s\"", spaceKey, title)

	payload := newPagePayload(spaceKey, title, content)
	if parentID != "" {
		payload["ancestors"] = []map[string]string{{"id": parentID}}
	}

	var result Page
	if err := c.doJSON(http.MethodPost, "rest/api/content", nil, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetPage(pageID string) (*Page, error) {
	return c.GetPageWithOptions(pageID, PageQuery{Expand: "body.storage,version,space"})
}

func (c *Client) GetPageWithOptions(pageID string, q PageQuery) (*Page, error) {
	params := url.Values{}
	if q.Expand != "" {
		params.Add("expand", q.Expand)
	}
	if q.Status != "" {
		params.Add("status", q.Status)
	}
	if q.Version > 0 {
		params.Add("version", strconv.Itoa(q.Version))
	}

	var result Page
	if err := c.doJSON(http.MethodGet, "rest/api/content/"+pageID, params, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FindPageByTitle returns the first page matching title in the space, or
// (nil, nil) when no page matches.
func (c *Client) FindPageByTitle(spaceKey, title string) (*Page, error) {
	params := url.Values{}
	params.Add("spaceKey", spaceKey)
	params.Add("title", title)
	params.Add("limit", "1")
	params.Add("expand", "body.storage,version")

	var result struct {
		Results []Page `json:"results"`
	}
	if err := c.doJSON(http.MethodGet, "rest/api/content", params, nil, &result); err != nil {
		return nil, err
	}

	if len(result.Results) == 0 {
		return nil, nil
	}
	return &result.Results[0], nil
}

func (c *Client) PageExists(spaceKey, title string) (bool, error) {
	page, err := c.FindPageByTitle(spaceKey, title)
	if err != nil {
		return false, err
	}
	return page != nil, nil
}

// GetPageID resolves a title to its content ID. Empty string when absent.
func (c *Client) GetPageID(spaceKey, title string) (string, error) {
	page, err := c.FindPageByTitle(spaceKey, title)
	if err != nil {
		return "", err
	}
	if page == nil {
		return "", nil
	}
	return page.ID, nil
}

// UpdatePage writes new content to an existing page, bumping the version.
// The write is skipped when the normalized remote body already equals
// content; the current page is returned unchanged in that case.
func (c *Client) UpdatePage(pageID, title, content string) (*Page, error) {
	current, err := c.GetPage(pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current page version: %w", err)
	}

	if NormalizeStorage(current.Body.Storage.Value) == NormalizeStorage(content) {
		c.warnf("Content of page %s is exactly the same, skipping update", pageID)
		return current, nil
	}
	c.debugf("Content of page %s differs, updating", pageID)

	payload := map[string]interface{}{
		"id":    pageID,
		"type":  "page",
		"title": title,
		"body": map[string]interface{}{
			"storage": map[string]interface{}{
				"value":          content,
				"representation": "storage",
			},
		},
		"version": map[string]interface{}{
			"number": current.Version.Number + 1,
		},
	}

	var result Page
	if err := c.doJSON(http.MethodPut, "rest/api/content/"+pageID, nil, payload, &result); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
			return nil, &PageUpdateForbiddenError{
				PageID: pageID,
				Title:  title,
				Msg:    apiErr.Error(),
			}
		}
		return nil, err
	}
	return &result, nil
}

// UpdateOrCreatePage updates the page titled title in the space when it
// exists, and creates it under parentID otherwise.
func (c *Client) UpdateOrCreatePage(spaceKey, title, content, parentID string) (*Page, error) {
	existing, err := c.FindPageByTitle(spaceKey, title)
	if err != nil {
		return nil, fmt.Errorf("failed to search for page '%s': %w", title, err)
	}

	var result *Page
	if existing != nil {
		result, err = c.UpdatePage(existing.ID, title, content)
	} else {
		result, err = c.CreatePageWithParent(spaceKey, title, content, parentID)
	}
	if err != nil {
		return nil, err
	}

	if result.Links.TinyUI != "" {
		c.infof("You may access your page at: %s%s", c.baseURL, result.Links.TinyUI)
	}
	return result, nil
}

// AppendToPage fetches the current storage body and appends appendBody to
// it. The write is skipped when the page already ends with appendBody.
func (c *Client) AppendToPage(pageID, title, appendBody string) (*Page, error) {
	current, err := c.GetPage(pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current page: %w", err)
	}
	return c.UpdatePage(pageID, title, current.Body.Storage.Value+appendBody)
}

// RemovePage deletes a page. With recursive set, child pages are deleted
// first, depth-first.
func (c *Client) RemovePage(pageID string, recursive bool) error {
	if recursive {
		children, err := c.GetChildPages(pageID)
		if err != nil {
			return fmt.Errorf("failed to list children of page %s: %w", pageID, err)
		}
		for _, child := range children {
			if err := c.RemovePage(child.ID, true); err != nil {
				return err
			}
		}
	}
	return c.doJSON(http.MethodDelete, "rest/api/content/"+pageID, nil, nil, nil)
}

func (c *Client) GetPageHistory(pageID string) (*History, error) {
	var result History
	if err := c.doJSON(http.MethodGet, "rest/api/content/"+pageID+"/history", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetPageAncestors(pageID string) ([]PageInfo, error) {
	params := url.Values{}
	params.Add("expand", "ancestors")

	var result struct {
		Ancestors []PageInfo `json:"ancestors"`
	}
	if err := c.doJSON(http.MethodGet, "rest/api/content/"+pageID, params, nil, &result); err != nil {
		return nil, err
	}
	return result.Ancestors, nil
}

// GetChildPages returns the page's direct children with their own
// children populated recursively.
func (c *Client) GetChildPages(pageID string) ([]PageInfo, error) {
	var result struct {
		Results []PageInfo `json:"results"`
	}
	if err := c.doJSON(http.MethodGet, "rest/api/content/"+pageID+"/child/page", nil, nil, &result); err != nil {
		return nil, err
	}

	for i := range result.Results {
		children, err := c.GetChildPages(result.Results[i].ID)
		if err != nil {
			c.infof("Warning: failed to get children for page '%s': %v", result.Results[i].Title, err)
			continue
		}
		result.Results[i].Children = children
	}
	return result.Results, nil
}

// GetPageHierarchy returns the page tree of a space, or the subtree under
// parentPageTitle when it is non-empty.
func (c *Client) GetPageHierarchy(spaceKey, parentPageTitle string) ([]PageInfo, error) {
	if parentPageTitle != "" {
		parent, err := c.FindPageByTitle(spaceKey, parentPageTitle)
		if err != nil {
			return nil, fmt.Errorf("failed to find parent page '%s': %w", parentPageTitle, err)
		}
		if parent == nil {
			return nil, fmt.Errorf("parent page '%s' not found in space '%s'", parentPageTitle, spaceKey)
		}
		return c.GetChildPages(parent.ID)
	}

	pages, err := c.getAllPagesWithParents(spaceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get pages in space: %w", err)
	}
	return buildPageTree(pages), nil
}

// getAllPagesWithParents fetches every page in a space with ancestor
// information and resolves the parent-child links.
func (c *Client) getAllPagesWithParents(spaceKey string) (map[string]PageInfo, error) {
	params := url.Values{}
	params.Add("spaceKey", spaceKey)
	params.Add("type", "page")
	params.Add("limit", "1000")
	params.Add("expand", "ancestors")

	var result struct {
		Results []struct {
			ID        string `json:"id"`
			Title     string `json:"title"`
			Ancestors []struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"ancestors"`
		} `json:"results"`
	}
	if err := c.doJSON(http.MethodGet, "rest/api/content", params, nil, &result); err != nil {
		return nil, err
	}

	pages := make(map[string]PageInfo)
	parentChildMap := make(map[string][]string)

	for _, page := range result.Results {
		pages[page.ID] = PageInfo{
			ID:       page.ID,
			Title:    page.Title,
			Children: []PageInfo{},
		}

		// The immediate parent is the last ancestor.
		if len(page.Ancestors) > 0 {
			parentID := page.Ancestors[len(page.Ancestors)-1].ID
			parentChildMap[parentID] = append(parentChildMap[parentID], page.ID)
		}
	}

	for parentID, childIDs := range parentChildMap {
		parent, exists := pages[parentID]
		if !exists {
			continue
		}
		for _, childID := range childIDs {
			if child, ok := pages[childID]; ok {
				parent.Children = append(parent.Children, child)
			}
		}
		pages[parentID] = parent
	}

	return pages, nil
}

// buildPageTree identifies root pages: those that are nobody's child.
func buildPageTree(allPages map[string]PageInfo) []PageInfo {
	childPages := make(map[string]bool)
	for _, page := range allPages {
		for _, child := range page.Children {
			childPages[child.ID] = true
		}
	}

	var roots []PageInfo
	for _, page := range allPages {
		if !childPages[page.ID] {
			roots = append(roots, page)
		}
	}
	return roots
}

// GetAllPages lists the pages of a space with pagination.
func (c *Client) GetAllPages(spaceKey string, opts ListOptions) ([]Page, error) {
	params := url.Values{}
	params.Add("spaceKey", spaceKey)
	if opts.Start > 0 {
		params.Add("start", strconv.Itoa(opts.Start))
	}
	if opts.Limit > 0 {
		params.Add("limit", strconv.Itoa(opts.Limit))
	} else {
		params.Add("limit", "50")
	}
	if opts.Status != "" {
		params.Add("status", opts.Status)
	}
	if opts.Expand != "" {
		params.Add("expand", opts.Expand)
	}
	if opts.ContentType != "" {
		params.Add("type", opts.ContentType)
	} else {
		params.Add("type", "page")
	}

	var result struct {
		Results []Page `json:"results"`
	}
	if err := c.doJSON(http.MethodGet, "rest/api/content", params, nil, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// GetPagesByLabel searches pages carrying the label via CQL.
func (c *Client) GetPagesByLabel(label string, start, limit int) ([]Page, error) {
	params := url.Values{}
	params.Add("cql", fmt.Sprintf("type=page AND label=%q", label))
	if start > 0 {
		params.Add("start", strconv.Itoa(start))
	}
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	}

	var result struct {
		Results []Page `json:"results"`
	}
	if err := c.doJSON(http.MethodGet, "rest/api/content/search", params, nil, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// PageProperty is a content property: an arbitrary JSON value stored
// under a key on a page.
type PageProperty struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

func (c *Client) GetPageProperty(pageID, key string) (*PageProperty, error) {
	var result PageProperty
	if err := c.doJSON(http.MethodGet, "rest/api/content/"+pageID+"/property/"+key, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SetPageProperty(pageID string, prop PageProperty) error {
	return c.doJSON(http.MethodPost, "rest/api/content/"+pageID+"/property", nil, prop, nil)
}

func (c *Client) DeletePageProperty(pageID, key string) error {
	return c.doJSON(http.MethodDelete, "rest/api/content/"+pageID+"/property/"+key, nil, nil, nil)
}
