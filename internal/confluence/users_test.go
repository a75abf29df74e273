package confluence

import "testing"

func TestGetAllGroups(t *testing.T) {
	client, mt := createTestClient()

	mt.addResponse("GET", "/wiki/rest/api/group", 200, map[string]interface{}{
		"results": []map[string]interface{}{
			{"name": "confluence-users"},
			{"name": "site-admins"},
		},
	})

	groups, err := client.GetAllGroups(0, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(groups) != 2 || groups[0].Name != "confluence-users" {
		t.Fatalf("Unexpected groups: %+v", groups)
	}
	if mt.lastRequest().URL.Query().Get("limit") != "1000" {
		t.Error("Expected default limit of 1000")
	}
}

func TestGetGroupMembers(t *testing.T) {
	client, mt := createTestClient()

	mt.addResponse("GET", "/wiki/rest/api/group/site-admins/member", 200, map[string]interface{}{
		"results": []map[string]interface{}{
			{"displayName": "Alex Doe", "accountId": "abc123"},
		},
	})

	members, err := client.GetGroupMembers("site-admins", 0, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(members) != 1 || members[0].DisplayName != "Alex Doe" {
		t.Fatalf("Unexpected members: %+v", members)
	}
}

func TestGetUserByUsername(t *testing.T) {
	client, mt := createTestClient()

	mt.addResponse("GET", "/wiki/rest/api/user", 200, map[string]interface{}{
		"username":    "adoe",
		"displayName": "Alex Doe",
	})

	user, err := client.GetUserByUsername("adoe")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.DisplayName != "Alex Doe" {
		t.Errorf("Unexpected user: %+v", user)
	}
	if mt.lastRequest().URL.Query().Get("username") != "adoe" {
		t.Error("Expected username query parameter")
	}
}

func TestGetContentRestrictions(t *testing.T) {
	client, mt := createTestClient()

	mt.addResponse("GET", "/wiki/rest/api/content/1/restriction/byOperation", 200, map[string]interface{}{
		"read": map[string]interface{}{
			"operation": "read",
			"restrictions": map[string]interface{}{
				"user": map[string]interface{}{
					"results": []map[string]interface{}{
						{"displayName": "Alex Doe"},
					},
				},
				"group": map[string]interface{}{
					"results": []map[string]interface{}{},
				},
			},
		},
		"update": map[string]interface{}{
			"operation": "update",
			"restrictions": map[string]interface{}{
				"user":  map[string]interface{}{"results": []map[string]interface{}{}},
				"group": map[string]interface{}{"results": []map[string]interface{}{}},
			},
		},
	})

	restrictions, err := client.GetContentRestrictions("1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(restrictions.Read.Restrictions.User.Results) != 1 {
		t.Errorf("Unexpected read restrictions: %+v", restrictions.Read)
	}
}
