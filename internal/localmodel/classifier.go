// Package localmodel runs sentiment classification on an ONNX model through
// hugot, for deployments that want model-backed verdicts without calling a
// hosted endpoint.
package localmodel

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/postlens/postlens/internal/models"
	"github.com/postlens/postlens/internal/utils"
)

const (
	modelDir           = "./internal/localmodel/models/"
	sentimentModelPath = modelDir + "sentiment_roberta.onnx"
	defaultModelRepo   = "cardiffnlp/twitter-roberta-base-sentiment-latest"
)

type LocalClassifier struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

// NewLocalClassifier downloads the model if it is not already on disk and
// builds a classification pipeline around it.
func NewLocalClassifier() (*LocalClassifier, error) {
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("[LocalModel] Failed to create model directory: %w", err)
	}

	if _, err := os.Stat(sentimentModelPath); os.IsNotExist(err) {
		slog.Info("[LocalModel] Model not found, downloading...")
		modelPath, err := hugot.DownloadModel(defaultModelRepo, modelDir, hugot.NewDownloadOptions())
		if err != nil {
			return nil, fmt.Errorf("[LocalModel] Failed to download sentiment model: %w", err)
		}
		slog.Info("[LocalModel] Model downloaded successfully", slog.String("path", modelPath))
	} else {
		slog.Info("[LocalModel] Using existing model", slog.String("path", sentimentModelPath))
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("[LocalModel] Failed to initialize Hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: sentimentModelPath,
		Name:      "sentimentClassificationPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("[LocalModel] Failed to initialize sentiment pipeline: %w", err)
	}

	return &LocalClassifier{session: session, pipeline: pipeline}, nil
}

// ClassifySentiment scores a single text against the local model.
func (c *LocalClassifier) ClassifySentiment(ctx context.Context, text string) ([]models.LabelScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	output, err := c.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("[LocalModel] Classification failed: %w", err)
	}

	raw := output.GetOutput()
	if len(raw) == 0 {
		return nil, fmt.Errorf("[LocalModel] Pipeline returned no output")
	}

	first, ok := raw[0].(string)
	if !ok {
		return nil, fmt.Errorf("[LocalModel] Unexpected output format from Hugot")
	}

	var scores []models.LabelScore
	if err := utils.DeserializeFromJSON([]byte(first), &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func (c *LocalClassifier) Close() {
	if c.session != nil {
		c.session.Destroy()
	}
}
