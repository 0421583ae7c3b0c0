package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/postlens/postlens/internal/clients/kafka_client"
	"github.com/postlens/postlens/internal/db"
	"github.com/postlens/postlens/internal/models"
	"github.com/postlens/postlens/internal/utils"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type uploadData struct {
	OriginalFilename string                `json:"original_filename"`
	FileSize         int64                 `json:"file_size"`
	ExtractedText    string                `json:"extracted_text"`
	Analysis         models.AnalysisReport `json:"analysis"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Backend is running",
		"service": serviceName,
	})
}

const testText = "This is a sample social media post about technology and innovation. " +
	"What do you think about the future of AI? Let's discuss in the comments!"

func (s *Server) handleTestAnalysis(w http.ResponseWriter, r *http.Request) {
	report := s.analyzer.Analyze(r.Context(), testText)

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"test_text": testText,
		"data": map[string]any{
			"analysis": report,
		},
	})
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// handleAnalyze runs the pipeline over raw text. The analysis itself never
// errors; only a malformed request body does.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	report := s.analyzeWithCache(r, req.Text, "")

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"data": map[string]any{
			"analysis": report,
		},
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+1)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "No file selected")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		writeError(w, http.StatusBadRequest, "Invalid file type. Allowed: PDF, PNG, JPG, JPEG")
		return
	}

	if header.Size > maxUploadBytes {
		writeError(w, http.StatusBadRequest, "File too large. Maximum size is 10MB")
		return
	}
	if header.Size == 0 {
		writeError(w, http.StatusBadRequest, "File is empty")
		return
	}

	tmp, err := os.CreateTemp(s.uploadDir, "upload-*"+ext)
	if err != nil {
		s.logger.Error("[Server] Failed to create temp file",
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Processing failed: %s", err.Error()))
		return
	}
	tmp.Close()

	doc, err := s.extractor.Extract(r.Context(), tmpPath)
	if err != nil {
		s.logger.Error("[Server] Extraction failed",
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Processing failed: %s", err.Error()))
		return
	}

	report := s.analyzeWithCache(r, doc.Text, header.Filename)

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "File processed and analyzed successfully",
		"data": uploadData{
			OriginalFilename: header.Filename,
			FileSize:         header.Size,
			ExtractedText:    doc.Text,
			Analysis:         report,
		},
	})
}

// fetchReports is indirected for tests.
var fetchReports = db.GetAllReports

// handleHistory lists the stored analysis reports. Registered only when the
// history store is configured.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	reports, err := fetchReports(r.Context())
	if err != nil {
		s.logger.Error("[Server] Failed to load report history",
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to retrieve analysis history")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"data": map[string]any{
			"reports": reports,
			"count":   len(reports),
		},
	})
}

// analyzeWithCache checks the report cache before running the pipeline, then
// caches, records, and optionally publishes the fresh result. Cache and
// history trouble never affects the response.
func (s *Server) analyzeWithCache(r *http.Request, text, sourceFile string) models.AnalysisReport {
	sum := sha256.Sum256([]byte(text))
	textSHA := hex.EncodeToString(sum[:])

	if s.cache != nil {
		if data, ok := s.cache.GetCachedReport(r.Context(), textSHA); ok {
			var cached models.AnalysisReport
			if err := utils.DeserializeFromJSON(data, &cached); err == nil {
				s.logger.Info("[Server] Returning cached report",
					slog.String("text_sha256", textSHA))
				return cached
			}
		}
	}

	report := s.analyzer.Analyze(r.Context(), text)

	if s.cache != nil {
		if data, err := utils.SerializeToJSON(report); err == nil {
			if err := s.cache.CacheReport(r.Context(), textSHA, data); err != nil {
				s.logger.Warn("[Server] Failed to cache report",
					slog.String("error", err.Error()))
			}
		}
	}

	stored := models.StoredReport{
		RequestID:  middleware.GetReqID(r.Context()),
		TextSHA256: textSHA,
		SourceFile: sourceFile,
		Report:     report,
		CreatedAt:  time.Now().UTC(),
	}

	if s.history != nil {
		s.history.Record(stored)
	}

	if s.publishResults {
		if err := kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_ANALYSIS_RESULTS, stored.RequestID, stored); err != nil {
			s.logger.Warn("[Server] Failed to publish report",
				slog.String("error", err.Error()))
		}
	}

	return report
}
