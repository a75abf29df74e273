package confluence

import (
	"net/http"
	"net/url"
)

type Label struct {
	ID     string `json:"id,omitempty"`
	Prefix string `json:"prefix"`
	Name   string `json:"name"`
}

func (c *Client) GetPageLabels(pageID string) ([]Label, error) {
	var result struct {
		Results []Label `json:"results"`
	}
	if err := c.doJSON(http.MethodGet, "rest/api/content/"+pageID+"/label", nil, nil, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (c *Client) AddPageLabel(pageID, label string) error {
	payload := map[string]string{
		"prefix": "global",
		"name":   label,
	}
	return c.doJSON(http.MethodPost, "rest/api/content/"+pageID+"/label", nil, payload, nil)
}

func (c *Client) RemovePageLabel(pageID, label string) error {
	params := url.Values{}
	params.Add("name", label)
	return c.doJSON(http.MethodDelete, "rest/api/content/"+pageID+"/label", params, nil, nil)
}
