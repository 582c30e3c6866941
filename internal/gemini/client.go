package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"storyteller/internal/models"
)

// DefaultEndpoint is the local proxy the desktop app talks to.
const DefaultEndpoint = "http://localhost:3001/api/gemini"

// Transport sends one request to the proxy and returns the provider envelope.
type Transport interface {
	Generate(ctx context.Context, req *Request) (*genai.GenerateContentResponse, error)
}

// Client posts requests to the proxy endpoint. It never retries and sets no
// timeout of its own; ctx is the only way to abandon a call.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func NewClient(endpoint string, opts ...Option) *Client {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Generate(ctx context.Context, req *Request) (*genai.GenerateContentResponse, error) {
	if req == nil {
		return nil, transportError(fmt.Errorf("request is nil"))
	}
	log := c.logger.With(zap.String("flow", string(req.Flow)), zap.String("endpoint", c.endpoint))

	body, err := json.Marshal(req)
	if err != nil {
		return nil, transportError(fmt.Errorf("encode request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, transportError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.Debug("sending generation request", zap.Int("bytes", len(body)))
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Warn("generation request failed", zap.Error(err))
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := proxyErrorMessage(raw, req.Flow)
		log.Warn("proxy returned error status", zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return nil, models.NewFlowError(models.ErrKindTransport, msg,
			fmt.Errorf("proxy responded with status %d", resp.StatusCode))
	}

	var out genai.GenerateContentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn("could not decode proxy response", zap.Error(err))
		return nil, transportError(fmt.Errorf("decode response: %w", err))
	}
	log.Debug("generation request succeeded", zap.Int("candidates", len(out.Candidates)))
	return &out, nil
}

func proxyErrorMessage(raw []byte, flow Flow) string {
	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != nil {
		if msg := strings.TrimSpace(env.Error.Message); msg != "" {
			return msg
		}
	}
	return flow.FallbackMessage()
}

func transportError(err error) *models.FlowError {
	return models.NewFlowError(models.ErrKindTransport, err.Error(), err)
}
