//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:5000")
}

// doJSON sends payload (if any) as JSON and decodes the JSON response body.
func doJSON(t *testing.T, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
	}

	req, err := http.NewRequest(method, fmt.Sprintf("%s%s", baseURL(), path), &body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s %s response: %v", method, path, err)
	}
	return resp.StatusCode, out
}

func totalQuestions(t *testing.T) int {
	t.Helper()
	status, data := doJSON(t, http.MethodGet, "/questions", nil)
	if status != http.StatusOK {
		t.Fatalf("list questions: unexpected status %d", status)
	}
	return int(data["total_questions"].(float64))
}

func expectSuccess(t *testing.T, status int, data map[string]interface{}) {
	t.Helper()
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, data)
	}
	if data["success"] != true {
		t.Fatalf("expected success=true, got %v", data["success"])
	}
}

func expectFailure(t *testing.T, status int, data map[string]interface{}, want int) {
	t.Helper()
	if status != want {
		t.Fatalf("expected %d, got %d: %v", want, status, data)
	}
	if data["success"] != false {
		t.Fatalf("expected success=false, got %v", data["success"])
	}
	if int(data["error"].(float64)) != want {
		t.Fatalf("expected error=%d, got %v", want, data["error"])
	}
}
