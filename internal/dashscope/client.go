package dashscope

import (
	"context"
	"fmt"
	"os"
	"sort"

	openai "github.com/sashabaranov/go-openai"

	"github.com/dshills/scopekey/internal/cache"
	"github.com/dshills/scopekey/internal/config"
)

// Default models for the OpenAI-compatible mode.
const (
	DefaultEmbeddingModel = "text-embedding-v3"
	DefaultChatModel      = "qwen-plus"
)

// Client calls DashScope through its OpenAI-compatible endpoint.
type Client struct {
	api            *openai.Client
	embeddingModel string
	chatModel      string
	vectors        *cache.Cache
}

// Option customizes a Client.
type Option func(*Client)

// WithEmbeddingModel overrides the embedding model name.
func WithEmbeddingModel(model string) Option {
	return func(c *Client) { c.embeddingModel = model }
}

// WithChatModel overrides the chat model name.
func WithChatModel(model string) Option {
	return func(c *Client) { c.chatModel = model }
}

// WithVectorCache enables embedding caching.
func WithVectorCache(vc *cache.Cache) Option {
	return func(c *Client) { c.vectors = vc }
}

// New creates a Client for the given OpenAI-compatible base URL and API key.
func New(baseURL, apiKey string, opts ...Option) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	c := &Client{
		api:            openai.NewClientWithConfig(cfg),
		embeddingModel: DefaultEmbeddingModel,
		chatModel:      DefaultChatModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromEnv builds a Client from the configuration published by the
// resolver. It fails when the configuration is incomplete rather than issuing
// requests that can only be rejected.
func NewFromEnv(opts ...Option) (*Client, error) {
	key := os.Getenv(config.KeyAPIKey)
	if key == "" {
		return nil, fmt.Errorf("%s is not set; run 'scopekey resolve' first", config.KeyAPIKey)
	}
	baseURL := os.Getenv(config.KeyCompatBaseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("%s is not set; run 'scopekey resolve' first", config.KeyCompatBaseURL)
	}
	return New(baseURL, key, opts...), nil
}

// EmbeddingModel returns the embedding model this client uses.
func (c *Client) EmbeddingModel() string { return c.embeddingModel }

// EmbedMany embeds a batch of texts, preserving input order. Cached vectors
// are served locally; only misses go to the API.
func (c *Client) EmbedMany(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, len(texts))
	var misses []string
	var missIdx []int
	for i, text := range texts {
		if c.vectors != nil {
			if vec, ok := c.vectors.Get(c.embeddingModel, text); ok {
				vectors[i] = vec
				continue
			}
		}
		misses = append(misses, text)
		missIdx = append(missIdx, i)
	}
	if len(misses) == 0 {
		return vectors, nil
	}

	var resp openai.EmbeddingResponse
	err := retryWithBackoff(ctx, 3, func() error {
		r, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Input: misses,
			Model: openai.EmbeddingModel(c.embeddingModel),
		})
		if err != nil {
			return classify(err)
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("creating embeddings: %w", err)
	}
	if len(resp.Data) != len(misses) {
		return nil, fmt.Errorf("embeddings response has %d vectors for %d inputs", len(resp.Data), len(misses))
	}

	// The API reports input positions via Index; don't assume response order.
	data := make([]openai.Embedding, len(resp.Data))
	copy(data, resp.Data)
	sort.Slice(data, func(i, j int) bool { return data[i].Index < data[j].Index })

	for i, d := range data {
		vectors[missIdx[i]] = d.Embedding
		if c.vectors != nil {
			// Cache write problems never fail the request.
			_ = c.vectors.Put(c.embeddingModel, misses[i], d.Embedding)
		}
	}
	return vectors, nil
}

// EmbedOne embeds a single text.
func (c *Client) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedMany(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 || len(vectors[0]) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	return vectors[0], nil
}

// Chat sends a system/user prompt pair and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, system, user string) (string, error) {
	var reply string
	err := retryWithBackoff(ctx, 3, func() error {
		resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: system},
				{Role: openai.ChatMessageRoleUser, Content: user},
			},
		})
		if err != nil {
			return classify(err)
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("no choices in response")
		}
		if resp.Choices[0].Message.Content == "" {
			return fmt.Errorf("empty text content in API response")
		}
		reply = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return reply, nil
}
