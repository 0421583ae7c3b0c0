package clients

import (
	"bytes"
	"context"
	"encoding/base64"
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

var (
	ocrInstance *OCRClient
	ocrOnce     sync.Once
)

// OCRClient posts image (and scanned PDF) bytes to the OCR service and
// returns the recognized text. Unlike the sentiment path, OCR requests are
// retried: there is no local fallback for them.
type OCRClient struct {
	Client   *http.Client
	endpoint string
}

// GetOCRClient returns the shared OCR client, or nil when OCR_API_URL is
// not configured.
func GetOCRClient() *OCRClient {
	ocrOnce.Do(func() {
		endpoint := os.Getenv("OCR_API_URL")
		if endpoint == "" {
			slog.Warn("[OCRClient] OCR_API_URL not set, image extraction disabled")
			return
		}

		slog.Info("[OCRClient] Initializing Client", slog.String("endpoint", endpoint))
		ocrInstance = &OCRClient{
			Client:   &http.Client{Timeout: 60 * time.Second},
			endpoint: endpoint,
		}
	})
	return ocrInstance
}

// ExtractText sends the file body for recognition.
func (o *OCRClient) ExtractText(ctx context.Context, filename string, content []byte) (string, error) {
	body, err := json.Marshal(models.OCRRequest{
		Filename: filename,
		Content:  base64.StdEncoding.EncodeToString(content),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal OCR request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := o.DoWithRetry(req)
	if err != nil {
		return "", fmt.Errorf("request failed after retries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var result models.OCRResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return result.Text, nil
}

// DoWithRetry retries server errors and transport failures with
// exponential backoff. Request bodies are rewound between attempts.
func (o *OCRClient) DoWithRetry(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error
	backoff := INITIAL_BACKOFF

	for attempt := 0; attempt < MAX_RETRIES; attempt++ {
		if req.GetBody != nil {
			if req.Body, err = req.GetBody(); err != nil {
				return nil, err
			}
		}

		resp, err = o.Client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if resp != nil {
			resp.Body.Close()
		}

		slog.Warn("[OCRClient] Request failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", errMsg(err, resp)))

		time.Sleep(backoff)
		backoff *= 2
	}

	return resp, err
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}
