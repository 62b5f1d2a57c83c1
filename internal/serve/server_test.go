package serve

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bouwdoc/viewtype/models"
	"github.com/bouwdoc/viewtype/pkg/catalog"
	"github.com/bouwdoc/viewtype/pkg/classify"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	engine, err := classify.NewEngine(catalog.Default())
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ts := httptest.NewServer(NewServer(engine, logger).Router())
	t.Cleanup(ts.Close)
	return ts
}

func TestHandleDetect(t *testing.T) {
	ts := newTestServer(t)

	body := `{
		"pages": [
			{"page_number": 1, "texts": [{"text": "Slaapkamer 1"}], "drawings": {}},
			{"page_number": 2, "texts": [], "drawings": {}}
		]
	}`
	resp, err := http.Post(ts.URL+"/detect-view-type/", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got models.DetectResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got.Pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(got.Pages))
	}
	if got.Pages[0].ViewType != "floor_plan" {
		t.Errorf("page 1 view type = %q, want floor_plan", got.Pages[0].ViewType)
	}
	if got.Pages[1].ViewType != "unknown" {
		t.Errorf("page 2 view type = %q, want unknown", got.Pages[1].ViewType)
	}
	if got.Pages[1].Scale == nil || got.Pages[1].Scale.Source != models.ScaleSourceNone {
		t.Errorf("page 2 scale = %+v, want not_detected", got.Pages[1].Scale)
	}
}

func TestHandleDetectInvalidBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/detect-view-type/", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleDetectInvalidPageDoesNotAbortBatch(t *testing.T) {
	ts := newTestServer(t)

	body := `{
		"pages": [
			{"page_number": 1, "texts": [{}], "drawings": {}},
			{"page_number": 2, "texts": [{"text": "Doorsnede A-A"}], "drawings": {}}
		]
	}`
	resp, err := http.Post(ts.URL+"/detect-view-type/", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	var got models.DetectResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got.Pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(got.Pages))
	}
	if got.Pages[0].Error == "" {
		t.Error("page 1 has no error, want invalid input failure")
	}
	if got.Pages[1].Error != "" || got.Pages[1].ViewType != "section" {
		t.Errorf("page 2 = %+v, want successful section result", got.Pages[1])
	}
}

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health/")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got["status"] != "healthy" || got["service"] != "viewtype-api" {
		t.Errorf("health body = %v", got)
	}
}

func TestHandleRoot(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	var got map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got["version"] != Version {
		t.Errorf("version = %v, want %v", got["version"], Version)
	}
}
