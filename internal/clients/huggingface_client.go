package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/postlens/postlens/internal/models"
)

const DEFAULT_SENTIMENT_ENDPOINT = "https://api-inference.huggingface.co/models/cardiffnlp/twitter-roberta-base-sentiment-latest"

var (
	huggingFaceInstance *HuggingFaceClient
	huggingFaceOnce     sync.Once
)

// HuggingFaceClient talks to the hosted sentiment model. Sentiment
// classification is a single attempt: the analyzer falls back to its
// lexicon on any failure, so retrying here would only delay degradation.
type HuggingFaceClient struct {
	Client   *http.Client
	endpoint string
	apiToken string
}

func GetHuggingFaceClient() *HuggingFaceClient {
	huggingFaceOnce.Do(func() {
		timeout := 10 * time.Second
		if env := os.Getenv("APP_ENV"); env == "dev" {
			timeout = 60 * time.Second
		}

		endpoint := os.Getenv("SENTIMENT_API_URL")
		if endpoint == "" {
			endpoint = DEFAULT_SENTIMENT_ENDPOINT
		}

		slog.Info("[HuggingFaceClient] Initializing Client",
			slog.Duration("timeout", timeout),
			slog.String("endpoint", endpoint))

		huggingFaceInstance = &HuggingFaceClient{
			Client:   &http.Client{Timeout: timeout},
			endpoint: endpoint,
			apiToken: os.Getenv("HUGGINGFACE_API_TOKEN"),
		}
	})
	return huggingFaceInstance
}

// ClassifySentiment submits text and returns the ranked label/score pairs.
func (h *HuggingFaceClient) ClassifySentiment(ctx context.Context, text string) ([]models.LabelScore, error) {
	body, err := json.Marshal(models.ClassifierRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)
	if h.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiToken)
	}

	start := time.Now()
	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	scores, err := parseClassifierResponse(respBody)
	if err != nil {
		slog.Warn("[HuggingFaceClient] Failed to parse response",
			slog.String("error", err.Error()),
			getPreview(respBody))
		return nil, err
	}

	slog.Debug("[HuggingFaceClient] Sentiment request successful",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("scores", len(scores)))

	return scores, nil
}

// parseClassifierResponse accepts both shapes the inference API returns: a
// ranked list, or that list wrapped in an outer array.
func parseClassifierResponse(body []byte) ([]models.LabelScore, error) {
	var nested [][]models.LabelScore
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) == 0 {
			return nil, fmt.Errorf("empty classifier response")
		}
		return nested[0], nil
	}

	var flat []models.LabelScore
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return flat, nil
}

// HealthCheck reports whether the sentiment endpoint is reachable.
func (h *HuggingFaceClient) HealthCheck() bool {
	req, err := http.NewRequest(http.MethodGet, h.endpoint, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", USER_AGENT)
	if h.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiToken)
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < 500
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}
