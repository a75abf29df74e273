package confluence

import (
	"net/http"
	"net/url"
	"strconv"
)

type Space struct {
	ID   int    `json:"id,omitempty"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

func (c *Client) GetSpace(spaceKey string) (*Space, error) {
	params := url.Values{}
	params.Add("expand", "description.plain,homepage")

	var result Space
	if err := c.doJSON(http.MethodGet, "rest/api/space/"+spaceKey, params, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetAllSpaces(start, limit int) ([]Space, error) {
	params := url.Values{}
	if start > 0 {
		params.Add("start", strconv.Itoa(start))
	}
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	} else {
		params.Add("limit", "500")
	}

	var result struct {
		Results []Space `json:"results"`
	}
	if err := c.doJSON(http.MethodGet, "rest/api/space", params, nil, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (c *Client) CreateSpace(spaceKey, name string) (*Space, error) {
	payload := map[string]string{
		"key":  spaceKey,
		"name": name,
	}

	var result Space
	if err := c.doJSON(http.MethodPost, "rest/api/space", nil, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteSpace(spaceKey string) error {
	return c.doJSON(http.MethodDelete, "rest/api/space/"+spaceKey, nil, nil, nil)
}
