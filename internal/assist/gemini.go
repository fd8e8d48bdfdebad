package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/rpggio/sala/internal/domain/client"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini implements Assistant on top of the Gemini API.
type Gemini struct {
	models contentGenerator
	model  string
}

// NewGemini creates a Gemini assistant.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Gemini{models: c.Models, model: model}, nil
}

var entitySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"isValid": {Type: genai.TypeBoolean},
		"type": {
			Type: genai.TypeString,
			Enum: []string{string(client.TypeCPF), string(client.TypeCNPJ), string(client.TypeUnknown)},
		},
		"name": {Type: genai.TypeString},
	},
}

var guidanceSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"description":   {Type: genai.TypeString},
		"emailTemplate": {Type: genai.TypeString},
	},
}

// LookupEntity asks the model to classify the document and produce a
// fictional but realistic holder name.
func (g *Gemini) LookupEntity(ctx context.Context, document string) (Entity, error) {
	if strings.TrimSpace(document) == "" {
		return Entity{Type: client.TypeUnknown}, nil
	}

	prompt := fmt.Sprintf(`Analyze this document string: %q.
1. Determine whether it looks like a Brazilian CPF or CNPJ.
2. If it looks valid, produce a FICTIONAL but realistic "Nome" (CPF) or "Razão Social" (CNPJ).
3. For a CNPJ use a company name format such as "Silva Comércio LTDA".
4. For a CPF use a realistic full name.
Return JSON only.`, document)

	var out Entity
	if err := g.generateJSON(ctx, prompt, entitySchema, &out); err != nil {
		return Entity{Type: client.TypeUnknown}, err
	}
	if out.Type == "" {
		out.Type = client.TypeUnknown
	}
	return out, nil
}

// GenerateGuidance drafts the attendance description and an e-mail for the
// citizen.
func (g *Gemini) GenerateGuidance(ctx context.Context, in GuidanceInput) (Guidance, error) {
	prompt := fmt.Sprintf(`Context: a municipal "Sala do Empreendedor" service center.
Task: write the standard record text for a service attendance.

Inputs:
- Theme: %s
- Subtheme: %s
- Client name: %s

Output (JSON, Portuguese):
1. description: a formal short summary of what this service usually involves, e.g. "Realizado atendimento para orientação sobre...".
2. emailTemplate: a polite e-mail to the citizen with instructions or confirming the service. Start with "Prezado(a) %s,".`,
		in.ThemeLabel, in.Subtheme, in.EntityName, in.EntityName)

	var out Guidance
	if err := g.generateJSON(ctx, prompt, guidanceSchema, &out); err != nil {
		return Guidance{}, err
	}
	return out, nil
}

func (g *Gemini) generateJSON(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if resp == nil {
		return fmt.Errorf("%w: empty response", ErrUnavailable)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: no text in response", ErrUnavailable)
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrUnavailable, err)
	}
	return nil
}
