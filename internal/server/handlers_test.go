package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/postlens/postlens/internal/analyzer"
	"github.com/postlens/postlens/internal/db"
	"github.com/postlens/postlens/internal/extraction"
	"github.com/postlens/postlens/internal/models"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	srv := New(Config{
		Analyzer:  analyzer.New(analyzer.Config{}),
		Extractor: extraction.NewPipeline(extraction.Config{}),
		UploadDir: t.TempDir(),
	})
	return srv.Router()
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return body
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "healthy" {
		t.Errorf("status field = %v, want healthy", body["status"])
	}
	if body["message"] != "Backend is running" {
		t.Errorf("message field = %v", body["message"])
	}
}

func TestTestAnalysisEndpoint(t *testing.T) {
	router := newTestServer(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/test-analysis", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "success" {
		t.Errorf("status = %v, want success", body["status"])
	}

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("data field missing: %v", body)
	}
	analysis, ok := data["analysis"].(map[string]any)
	if !ok {
		t.Fatalf("analysis field missing: %v", data)
	}
	sentiment, ok := analysis["sentiment"].(map[string]any)
	if !ok || sentiment["label"] == "" {
		t.Errorf("sentiment missing from analysis: %v", analysis)
	}
	if _, ok := analysis["engagement_score"].(float64); !ok {
		t.Errorf("engagement_score missing from analysis: %v", analysis)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := newTestServer(t)

	payload := `{"text": "I absolutely love this amazing new product! What do you think?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	analysis := data["analysis"].(map[string]any)
	sentiment := analysis["sentiment"].(map[string]any)
	if sentiment["label"] != "POSITIVE" {
		t.Errorf("label = %v, want POSITIVE", sentiment["label"])
	}
}

func TestAnalyzeEndpointRejectsBadBody(t *testing.T) {
	router := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestUploadValidation(t *testing.T) {
	router := newTestServer(t)

	tests := []struct {
		name      string
		field     string
		filename  string
		content   []byte
		wantError string
	}{
		{
			name:      "wrong form field",
			field:     "document",
			filename:  "report.pdf",
			content:   []byte("data"),
			wantError: "No file provided",
		},
		{
			name:      "disallowed extension",
			field:     "file",
			filename:  "notes.txt",
			content:   []byte("data"),
			wantError: "Invalid file type. Allowed: PDF, PNG, JPG, JPEG",
		},
		{
			name:      "empty file",
			field:     "file",
			filename:  "scan.png",
			content:   nil,
			wantError: "File is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartBody(t, tt.field, tt.filename, tt.content)
			req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
			req.Header.Set("Content-Type", contentType)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			got := decodeBody(t, rec)
			if got["error"] != tt.wantError {
				t.Errorf("error = %v, want %q", got["error"], tt.wantError)
			}
		})
	}
}

func newHistoryServer(t *testing.T) http.Handler {
	t.Helper()
	srv := New(Config{
		Analyzer:  analyzer.New(analyzer.Config{}),
		Extractor: extraction.NewPipeline(extraction.Config{}),
		History:   db.NewHistoryWriter(),
		UploadDir: t.TempDir(),
	})
	return srv.Router()
}

func TestHistoryEndpoint(t *testing.T) {
	orig := fetchReports
	t.Cleanup(func() { fetchReports = orig })
	fetchReports = func(ctx context.Context) ([]models.StoredReport, error) {
		return []models.StoredReport{
			{RequestID: "req-1", TextSHA256: "aaa"},
			{RequestID: "req-2", TextSHA256: "bbb"},
		}, nil
	}

	router := newHistoryServer(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["status"] != "success" {
		t.Errorf("status = %v, want success", body["status"])
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("data field missing: %v", body)
	}
	if count, _ := data["count"].(float64); count != 2 {
		t.Errorf("count = %v, want 2", data["count"])
	}
	reports, ok := data["reports"].([]any)
	if !ok || len(reports) != 2 {
		t.Errorf("reports = %v, want 2 entries", data["reports"])
	}
}

func TestHistoryEndpointStoreFailure(t *testing.T) {
	orig := fetchReports
	t.Cleanup(func() { fetchReports = orig })
	fetchReports = func(ctx context.Context) ([]models.StoredReport, error) {
		return nil, errors.New("table unavailable")
	}

	router := newHistoryServer(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	got := decodeBody(t, rec)
	if got["error"] != "Failed to retrieve analysis history" {
		t.Errorf("error = %v", got["error"])
	}
}

func TestHistoryEndpointAbsentWithoutStore(t *testing.T) {
	router := newTestServer(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 when history is disabled", rec.Code)
	}
}

func TestUploadCorruptPDFFails(t *testing.T) {
	router := newTestServer(t)

	body, contentType := multipartBody(t, "file", "broken.pdf", []byte("not actually a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500: %s", rec.Code, rec.Body.String())
	}
	got := decodeBody(t, rec)
	errMsg, _ := got["error"].(string)
	if !strings.HasPrefix(errMsg, "Processing failed:") {
		t.Errorf("error = %q, want Processing failed prefix", errMsg)
	}
}
