package confluence

import (
	"net/http"
	"net/url"
	"strconv"
)

// SearchOptions holds the optional CQL search parameters.
type SearchOptions struct {
	Start                 int
	Limit                 int
	Expand                string
	Excerpt               string
	IncludeArchivedSpaces bool
}

type SearchHit struct {
	Content Page   `json:"content"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	URL     string `json:"url"`
}

type SearchResults struct {
	Results   []SearchHit `json:"results"`
	Start     int         `json:"start"`
	Limit     int         `json:"limit"`
	Size      int         `json:"size"`
	TotalSize int         `json:"totalSize"`
}

// SearchCQL runs a Confluence Query Language search.
func (c *Client) SearchCQL(cql string, opts SearchOptions) (*SearchResults, error) {
	params := url.Values{}
	params.Add("cql", cql)
	if opts.Start > 0 {
		params.Add("start", strconv.Itoa(opts.Start))
	}
	if opts.Limit > 0 {
		params.Add("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Expand != "" {
		params.Add("expand", opts.Expand)
	}
	if opts.Excerpt != "" {
		params.Add("excerpt", opts.Excerpt)
	}
	if opts.IncludeArchivedSpaces {
		params.Add("includeArchivedSpaces", "true")
	}

	var result SearchResults
	if err := c.doJSON(http.MethodGet, "rest/api/search", params, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LongTask is the structured long-running-task record exposed by
// rest/api/longtask. The PDF export flow does not use it; that legacy
// flow only renders the HTML fragment handled in export.go.
type LongTask struct {
	ID   string `json:"id"`
	Name struct {
		Key string `json:"key"`
	} `json:"name"`
	ElapsedTime        int64 `json:"elapsedTime"`
	PercentageComplete int   `json:"percentageComplete"`
	Successful         bool  `json:"successful"`
	Finished           bool  `json:"finished"`
	Messages           []struct {
		Translation string `json:"translation"`
	} `json:"messages,omitempty"`
}

func (c *Client) GetLongTasks(start, limit int) ([]LongTask, error) {
	params := url.Values{}
	if start > 0 {
		params.Add("start", strconv.Itoa(start))
	}
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	}

	var result struct {
		Results []LongTask `json:"results"`
	}
	if err := c.doJSON(http.MethodGet, "rest/api/longtask", params, nil, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (c *Client) GetLongTask(taskID string) (*LongTask, error) {
	var result LongTask
	if err := c.doJSON(http.MethodGet, "rest/api/longtask/"+taskID, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
