package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/postlens/postlens/internal/models"
)

const (
	openAIModel          = openai.GPT3Dot5Turbo1106
	openAIRequestTimeout = 60 * time.Second // Timeout for individual OpenAI API requests
)

var (
	openAIClientInstance *OpenAIClient
	openAIOnce           sync.Once
)

// OpenAIClient is an alternate sentiment classifier backend, selected with
// CLASSIFIER_BACKEND=openai.
type OpenAIClient struct {
	Client *openai.Client
}

func GetOpenAIClient() *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		slog.Error("[OpenAIClient] Missing OPENAI_API_KEY in environment variables")
		panic("[OpenAIClient] Missing OPENAI_API_KEY in environment variables")
	}
	openAIOnce.Do(func() {
		config := openai.DefaultConfig(apiKey)
		config.HTTPClient = &http.Client{
			Timeout: openAIRequestTimeout,
		}

		openAIClientInstance = &OpenAIClient{
			Client: openai.NewClientWithConfig(config),
		}
		slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout",
			slog.Duration("timeout", openAIRequestTimeout))
	})
	return openAIClientInstance
}

const sentimentPrompt = `You are a sentiment classifier. Classify the sentiment of the user's text.
Respond with ONLY a JSON array ranking all three labels by confidence, like:
[{"label":"positive","score":0.91},{"label":"neutral","score":0.07},{"label":"negative","score":0.02}]
Scores must sum to 1.`

// ClassifySentiment asks the chat model for a ranked label list, matching
// the shape of the hosted classifier response.
func (o *OpenAIClient) ClassifySentiment(ctx context.Context, text string) ([]models.LabelScore, error) {
	resp, err := o.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       openAIModel,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sentimentPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var scores []models.LabelScore
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &scores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completion: %w", err)
	}
	return scores, nil
}
