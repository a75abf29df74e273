package confluence

import (
	"net/http"
	"net/url"
	"strconv"
)

type User struct {
	Username    string `json:"username,omitempty"`
	UserKey     string `json:"userKey,omitempty"`
	AccountID   string `json:"accountId,omitempty"`
	DisplayName string `json:"displayName"`
	Status      string `json:"status,omitempty"`
}

type Group struct {
	Name string `json:"name"`
}

func (c *Client) GetAllGroups(start, limit int) ([]Group, error) {
	params := url.Values{}
	if start > 0 {
		params.Add("start", strconv.Itoa(start))
	}
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	} else {
		params.Add("limit", "1000")
	}

	var result struct {
		Results []Group `json:"results"`
	}
	if err := c.doJSON(http.MethodGet, "rest/api/group", params, nil, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (c *Client) GetGroupMembers(groupName string, start, limit int) ([]User, error) {
	params := url.Values{}
	if start > 0 {
		params.Add("start", strconv.Itoa(start))
	}
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	} else {
		params.Add("limit", "1000")
	}

	var result struct {
		Results []User `json:"results"`
	}
	if err := c.doJSON(http.MethodGet, "rest/api/group/"+groupName+"/member", params, nil, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (c *Client) GetUserByUsername(username string) (*User, error) {
	params := url.Values{}
	params.Add("username", username)
	return c.getUser(params)
}

func (c *Client) GetUserByKey(userKey string) (*User, error) {
	params := url.Values{}
	params.Add("key", userKey)
	return c.getUser(params)
}

func (c *Client) getUser(params url.Values) (*User, error) {
	var result User
	if err := c.doJSON(http.MethodGet, "rest/api/user", params, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RestrictionSet lists the users and groups holding one operation
// (read or update) on a piece of content.
type RestrictionSet struct {
	Operation    string `json:"operation"`
	Restrictions struct {
		User struct {
			Results []User `json:"results"`
		} `json:"user"`
		Group struct {
			Results []Group `json:"results"`
		} `json:"group"`
	} `json:"restrictions"`
}

type ContentRestrictions struct {
	Read   RestrictionSet `json:"read"`
	Update RestrictionSet `json:"update"`
}

func (c *Client) GetContentRestrictions(contentID string) (*ContentRestrictions, error) {
	var result ContentRestrictions
	if err := c.doJSON(http.MethodGet, "rest/api/content/"+contentID+"/restriction/byOperation", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
