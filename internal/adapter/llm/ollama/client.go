package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/tidwall/gjson"

	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama2"
	DefaultTimeout = 30 * time.Second
)

var ErrEmptyGeneration = errors.New("ollama returned no response field")

type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Responder generates in-character replies through Ollama's /api/generate.
type Responder struct {
	client   *client.Client
	endpoint string
	model    string
	timeout  time.Duration
	tmpl     *template.Template
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// NewResponder builds a Responder. A nil tmpl selects the built-in prompt.
func NewResponder(cfg Config, tmpl *template.Template) (*Responder, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if tmpl == nil {
		var err error
		if tmpl, err = LoadTemplate(context.Background(), nil); err != nil {
			return nil, err
		}
	}
	c, err := client.NewClient(client.WithDialTimeout(cfg.Timeout))
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}
	return &Responder{
		client:   c,
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/api/generate",
		model:    cfg.Model,
		timeout:  cfg.Timeout,
		tmpl:     tmpl,
	}, nil
}

var _ ports.ResponseGenerator = (*Responder)(nil)

func (r *Responder) Generate(ctx context.Context, req ports.ResponseRequest) (character.Response, error) {
	prompt, err := BuildPrompt(r.tmpl, req)
	if err != nil {
		return character.Response{}, err
	}
	text, err := r.generate(ctx, prompt)
	if err != nil {
		return character.Response{}, err
	}
	return ParseResponse(text), nil
}

func (r *Responder) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: r.model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer protocol.ReleaseRequest(req)
	defer protocol.ReleaseResponse(resp)

	req.SetRequestURI(r.endpoint)
	req.SetMethod(consts.MethodPost)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(body)

	if err := r.client.DoTimeout(ctx, req, resp, r.timeout); err != nil {
		return "", fmt.Errorf("call ollama: %w", err)
	}
	if code := resp.StatusCode(); code != consts.StatusOK {
		return "", fmt.Errorf("ollama status %d: %s", code, resp.Body())
	}
	field := gjson.GetBytes(resp.Body(), "response")
	if !field.Exists() {
		return "", ErrEmptyGeneration
	}
	return field.String(), nil
}
