package infra_recommender

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/humanbelnik/popcorn/core/internal/config"
	"github.com/humanbelnik/popcorn/core/internal/model"
	"github.com/sony/gobreaker/v2"
)

var (
	ErrUpstream          = fmt.Errorf("%w: recommendation service failed", model.ErrExternalDependency)
	ErrMalformedResponse = fmt.Errorf("%w: recommendation service returned malformed output", model.ErrExternalDependency)
	ErrBreakerOpen       = fmt.Errorf("%w: recommendation service temporarily disabled", model.ErrExternalDependency)
)

const (
	chatCompletionsPath = "/v1/chat/completions"
	systemPrompt        = "You are a movie expert helping select films based on user preferences and past ratings."
	maxErrorBody        = 1 << 20
)

// HTTPError is a non-2xx answer from the chat completions endpoint.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("recommender http %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	timeout     time.Duration

	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]model.Recommendation]
	logger     *slog.Logger
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func New(cfg config.Recommender, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("recommender base url required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	c := &Client{
		baseURL:     base,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		httpClient:  &http.Client{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = newBreaker(cfg, c.logger)
	return c, nil
}

func newBreaker(cfg config.Recommender, logger *slog.Logger) *gobreaker.CircuitBreaker[[]model.Recommendation] {
	threshold := uint32(max(cfg.BreakerFailures, 1))
	cooldown := cfg.BreakerCooldown
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}

	return gobreaker.NewCircuitBreaker[[]model.Recommendation](gobreaker.Settings{
		Name:        "recommender",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

/*
Recommend asks the chat model to pick req.Limit movies out of req.Candidates.
The answer is returned as the model produced it; checking ids against the
candidates is up to the caller.
*/
func (c *Client) Recommend(ctx context.Context, req model.RecommendationRequest) ([]model.Recommendation, error) {
	recs, err := c.breaker.Execute(func() ([]model.Recommendation, error) {
		return c.recommend(ctx, req)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, ErrBreakerOpen
	case err != nil:
		return nil, err
	}
	return recs, nil
}

func (c *Client) recommend(ctx context.Context, req model.RecommendationRequest) ([]model.Recommendation, error) {
	prompt, err := buildPrompt(req)
	if err != nil {
		return nil, errors.Join(ErrMalformedResponse, err)
	}

	body := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    c.temperature,
		ResponseFormat: map[string]any{"type": "json_object"},
	}

	var resp chatCompletionResponse
	if err := c.doJSON(ctx, http.MethodPost, chatCompletionsPath, body, &resp); err != nil {
		return nil, errors.Join(ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}

	recs, err := parseSelection(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, errors.Join(ErrMalformedResponse, err)
	}

	c.logger.Info("recommendation received",
		slog.String("model", c.model),
		slog.Int("candidates", len(req.Candidates)),
		slog.Int("selected", len(recs)),
	)
	return recs, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat map[string]any `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
