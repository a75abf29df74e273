package confluence

import (
	"net/http"
	"testing"
)

func TestGetSpace(t *testing.T) {
	client, mt := createTestClient()

	mt.addResponse("GET", "/wiki/rest/api/space/TEST", 200, map[string]interface{}{
		"id":   42,
		"key":  "TEST",
		"name": "Test Space",
		"type": "global",
	})

	space, err := client.GetSpace("TEST")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if space.Key != "TEST" || space.Name != "Test Space" {
		t.Errorf("Unexpected space: %+v", space)
	}
	if mt.lastRequest().URL.Query().Get("expand") != "description.plain,homepage" {
		t.Error("Expected expand parameter on space fetch")
	}
}

func TestGetAllSpaces(t *testing.T) {
	client, mt := createTestClient()

	mt.addResponse("GET", "/wiki/rest/api/space", 200, map[string]interface{}{
		"results": []map[string]interface{}{
			{"key": "ONE", "name": "First"},
			{"key": "TWO", "name": "Second"},
		},
	})

	spaces, err := client.GetAllSpaces(0, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(spaces) != 2 {
		t.Fatalf("Expected 2 spaces, got %d", len(spaces))
	}
	if mt.lastRequest().URL.Query().Get("limit") != "500" {
		t.Error("Expected default limit of 500")
	}
}

func TestCreateSpace(t *testing.T) {
	client, mt := createTestClient()

	mt.addResponse("POST", "/wiki/rest/api/space", 200, map[string]interface{}{
		"id":   7,
		"key":  "NEW",
		"name": "New Space",
	})

	space, err := client.CreateSpace("NEW", "New Space")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if space.Key != "NEW" {
		t.Errorf("Expected key 'NEW', got '%s'", space.Key)
	}
	if mt.lastRequest().Method != http.MethodPost {
		t.Errorf("Expected POST, got %s", mt.lastRequest().Method)
	}
}

func TestDeleteSpace(t *testing.T) {
	client, mt := createTestClient()

	mt.addResponse("DELETE", "/wiki/rest/api/space/OLD", 204, nil)

	if err := client.DeleteSpace("OLD"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if mt.lastRequest().Method != http.MethodDelete {
		t.Errorf("Expected DELETE, got %s", mt.lastRequest().Method)
	}
}
