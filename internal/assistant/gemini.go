package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/wrteam/sportcenter-assistant/internal/registry"
)

// DefaultModel is used when GEMINI_MODEL is not configured.
const DefaultModel = "gemini-2.0-flash"

// GeminiConfig holds settings for the Gemini inference client.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// GeminiClient implements Inference against the Gemini API. The operation
// declarations are converted once at construction and sent with every
// request, together with the system instructions.
type GeminiClient struct {
	client *genai.Client
	model  string
	system *genai.Content
	tools  []*genai.Tool
	logger *slog.Logger
}

var _ Inference = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini-backed inference client advertising the
// given operations.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, ops []registry.Operation, logger *slog.Logger) (*GeminiClient, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	declarations := make([]*genai.FunctionDeclaration, 0, len(ops))
	for _, op := range ops {
		declarations = append(declarations, toDeclaration(op))
	}

	return &GeminiClient{
		client: client,
		model:  cfg.Model,
		system: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		tools:  []*genai.Tool{{FunctionDeclarations: declarations}},
		logger: logger,
	}, nil
}

// Generate implements Inference. When the model proposes several calls in
// one reply, only the first is honored; the loop handles one call per turn.
func (c *GeminiClient) Generate(ctx context.Context, history []Turn, message string) (*ModelReply, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: c.system,
		Tools:             c.tools,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	if calls := resp.FunctionCalls(); len(calls) > 0 {
		if len(calls) > 1 {
			c.logger.Warn("model proposed multiple calls, using the first",
				"count", len(calls), "first", calls[0].Name)
		}
		return &ModelReply{Call: &ModelCall{Name: calls[0].Name, Args: calls[0].Args}}, nil
	}
	return &ModelReply{Text: resp.Text()}, nil
}

// Close implements Inference. The underlying client holds no connection
// state that needs releasing.
func (c *GeminiClient) Close() error { return nil }

func toDeclaration(op registry.Operation) *genai.FunctionDeclaration {
	properties := make(map[string]*genai.Schema, len(op.Params))
	var required []string
	for _, p := range op.Params {
		properties[p.Name] = &genai.Schema{
			Type:        toSchemaType(p.Type),
			Description: p.Description,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return &genai.FunctionDeclaration{
		Name:        op.Name,
		Description: op.Description,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: properties,
			Required:   required,
		},
	}
}

func toSchemaType(t registry.ParamType) genai.Type {
	switch t {
	case registry.TypeInteger:
		return genai.TypeInteger
	case registry.TypeNumber:
		return genai.TypeNumber
	default:
		return genai.TypeString
	}
}
