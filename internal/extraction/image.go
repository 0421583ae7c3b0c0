package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// extractImage sends the image to the OCR service. OCR failure is not fatal:
// the diagnostic string becomes the extracted text and the analysis still
// runs over it.
func (p *Pipeline) extractImage(ctx context.Context, path string) (string, error) {
	if p.ocr == nil {
		return "", fmt.Errorf("image extraction requires OCR_API_URL to be configured")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	text, err := p.ocr.ExtractText(ctx, filepath.Base(path), content)
	if err != nil {
		p.logger.Error("[Extraction] Image OCR failed",
			slog.String("error", err.Error()))
		return fmt.Sprintf("OCR processing error: %s", err.Error()), nil
	}

	if strings.TrimSpace(text) == "" {
		return "No text could be extracted from this image.", nil
	}
	return text, nil
}
