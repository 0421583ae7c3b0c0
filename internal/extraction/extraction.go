// Package extraction turns uploaded documents into plain text. PDFs are
// parsed directly, images go through the remote OCR service, markdown is
// flattened, and plain text passes through.
package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/postlens/postlens/internal/clients"
)

type Format string

const (
	FormatPDF      Format = "pdf"
	FormatPNG      Format = "png"
	FormatJPEG     Format = "jpeg"
	FormatMarkdown Format = "md"
	FormatText     Format = "txt"
)

const DefaultMaxFileSize = 10 << 20

// Document is the result of a successful extraction.
type Document struct {
	Text     string
	Format   Format
	FileSize int64
}

type Config struct {
	MaxFileSize int64
	OCR         *clients.OCRClient
	Logger      *slog.Logger
}

type Pipeline struct {
	maxFileSize int64
	ocr         *clients.OCRClient
	logger      *slog.Logger
}

func NewPipeline(cfg Config) *Pipeline {
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Pipeline{
		maxFileSize: cfg.MaxFileSize,
		ocr:         cfg.OCR,
		logger:      cfg.Logger,
	}
}

// Detect maps a file extension to a supported format.
func (p *Pipeline) Detect(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return FormatPDF, nil
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported file format: %s", ext)
	}
}

// Extract reads the file at path and returns its text content. Unsupported
// formats and oversize files are hard errors; OCR trouble on images degrades
// to a diagnostic string instead so the caller still gets a document.
func (p *Pipeline) Extract(ctx context.Context, path string) (*Document, error) {
	format, err := p.Detect(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() > p.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (limit %d)", info.Size(), p.maxFileSize)
	}

	var text string
	switch format {
	case FormatPDF:
		text, err = p.extractPDF(ctx, path)
	case FormatPNG, FormatJPEG:
		text, err = p.extractImage(ctx, path)
	case FormatMarkdown:
		text, err = p.extractMarkdown(path)
	case FormatText:
		text, err = p.extractPlainText(path)
	}
	if err != nil {
		return nil, err
	}

	p.logger.Info("[Extraction] Document extracted",
		slog.String("format", string(format)),
		slog.Int("chars", len(text)))

	return &Document{
		Text:     text,
		Format:   format,
		FileSize: info.Size(),
	}, nil
}
