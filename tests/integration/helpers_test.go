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
	"time"
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

// doJSON sends payload (if any) and decodes the JSON response body.
func doJSON(t *testing.T, method, url string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s %s response failed: %v", method, url, err)
	}
	return resp.StatusCode, out
}

// createQuestion inserts a uniquely worded question and returns its id and text.
func createQuestion(t *testing.T, category int) (int, string) {
	t.Helper()

	text := fmt.Sprintf("Integration question %d?", time.Now().UnixNano())
	status, out := doJSON(t, http.MethodPost, baseURL()+"/questions", map[string]interface{}{
		"question":   text,
		"answer":     "Integration answer",
		"category":   category,
		"difficulty": 2,
	})
	if status != http.StatusOK {
		t.Fatalf("create question: unexpected status %d: %v", status, out)
	}
	id, ok := out["new_question_id"].(float64)
	if !ok {
		t.Fatalf("create question: missing new_question_id in %v", out)
	}
	return int(id), text
}

func deleteQuestion(t *testing.T, id int) {
	t.Helper()
	status, out := doJSON(t, http.MethodDelete, fmt.Sprintf("%s/questions/%d", baseURL(), id), nil)
	if status != http.StatusOK {
		t.Fatalf("delete question %d: unexpected status %d: %v", id, status, out)
	}
}
