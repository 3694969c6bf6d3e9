// Copyright 2025 SA Demo Suite Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nim

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is NVIDIA's hosted OpenAI-compatible endpoint.
	DefaultBaseURL = "https://integrate.api.nvidia.com/v1"
	// DefaultModel is the chat model used for both generation and chat.
	DefaultModel = "meta/llama-3.3-70b-instruct"

	// MaxRetries defines the maximum number of retry attempts
	MaxRetries = 3
	// BaseRetryDelay defines the base delay for exponential backoff
	BaseRetryDelay = time.Second

	generationTemperature = 0.2
	generationMaxTokens   = 4096
	chatTemperature       = 0.3
	chatMaxTokens         = 1024
)

// Client wraps an OpenAI-compatible chat client pointed at a NIM endpoint.
type Client struct {
	client *openai.Client
	logger *zap.Logger
	model  string
}

// Message is one turn of the SAD follow-up chat.
type Message struct {
	Role    string `json:"role"` // user | assistant
	Content string `json:"content"`
}

// RetryableError represents an error that can be retried
type RetryableError struct {
	StatusCode int
	Message    string
	RetryAfter time.Duration
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, e.Message)
}

// NewClient creates a NIM client. Empty baseURL and model fall back to
// the NVIDIA-hosted defaults.
func NewClient(apiKey, baseURL, model string, logger *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	client := &Client{
		client: openai.NewClientWithConfig(cfg),
		logger: logger,
		model:  model,
	}

	logger.Info("NIM client initialized",
		zap.String("base_url", baseURL),
		zap.String("model", model),
		zap.Int("max_retries", MaxRetries),
	)

	return client, nil
}

// GenerateArchitecture prompts the model with a free-text use case and
// returns the parsed structured response.
func (c *Client) GenerateArchitecture(ctx context.Context, userPrompt string) (*ArchitectureResponse, error) {
	if userPrompt == "" {
		return nil, fmt.Errorf("prompt cannot be empty")
	}

	c.logger.Debug("Generating architecture",
		zap.String("prompt_preview", truncateText(userPrompt, 100)),
		zap.String("model", c.model),
	)

	content, err := c.completeWithRetry(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: architectureSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate architecture: %w", err)
	}

	resp, err := ParseArchitectureResponse(content)
	if err != nil {
		c.logger.Error("Architecture response failed to parse",
			zap.Error(err),
			zap.String("content_preview", truncateText(content, 200)),
		)
		return nil, err
	}

	c.logger.Info("Architecture generated",
		zap.String("title", resp.UseCaseTitle),
		zap.Int("variants", len(resp.Variants)),
	)
	return resp, nil
}

// Chat answers a follow-up question grounded in a previously generated SAD.
func (c *Client) Chat(ctx context.Context, sad *ArchitectureResponse, history []Message) (string, error) {
	if sad == nil {
		return "", fmt.Errorf("SAD context is required")
	}
	if len(history) == 0 {
		return "", fmt.Errorf("chat history cannot be empty")
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: BuildChatSystemPrompt(sad),
	})
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	content, err := c.completeWithRetry(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to answer chat: %w", err)
	}
	return content, nil
}

// completeWithRetry runs a chat completion with exponential backoff on
// rate limits and upstream 5xx responses.
func (c *Client) completeWithRetry(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	var lastErr error
	delay := BaseRetryDelay

	for attempt := 0; attempt < MaxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("Retrying chat completion request",
				zap.Int("attempt", attempt+1),
				zap.Int("max_retries", MaxRetries),
				zap.Duration("delay", delay),
			)

			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			lastErr = c.handleAPIError(err)

			if retryErr, ok := lastErr.(*RetryableError); ok {
				if retryErr.RetryAfter > 0 {
					delay = retryErr.RetryAfter
				} else {
					delay = BaseRetryDelay * time.Duration(1<<uint(attempt))
				}
				continue
			}
			return "", lastErr
		}

		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("no choices returned from model")
		}

		if attempt > 0 {
			c.logger.Info("Chat completion succeeded after retry",
				zap.Int("attempt", attempt+1),
			)
		}
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("exhausted all retry attempts: %w", lastErr)
}

// handleAPIError classifies API errors as retryable or terminal.
func (c *Client) handleAPIError(err error) error {
	if apiErr, ok := err.(*openai.APIError); ok {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("invalid API key or unauthorized access: %w", err)
		case http.StatusTooManyRequests:
			retryAfter := BaseRetryDelay
			if apiErr.RetryAfter != nil {
				retryAfter = time.Duration(*apiErr.RetryAfter) * time.Second
			}
			return &RetryableError{
				StatusCode: apiErr.HTTPStatusCode,
				Message:    apiErr.Message,
				RetryAfter: retryAfter,
			}
		case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return &RetryableError{
				StatusCode: apiErr.HTTPStatusCode,
				Message:    apiErr.Message,
			}
		default:
			return fmt.Errorf("NIM API error (status %d): %s", apiErr.HTTPStatusCode, apiErr.Message)
		}
	}
	return fmt.Errorf("NIM client error: %w", err)
}

// truncateText truncates text to a maximum length for logging
func truncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength] + "..."
}
