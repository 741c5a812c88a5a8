package advisory

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

const themeInstruction = "Generate a gentle, psycho-creative daily theme for a community focused on " +
	"emotional safety and 'witnessing not rating'. The tone should be soft, non-urgent, and intimate."

var themeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":      {Type: genai.TypeString, Description: "A poetic, short title for the daily theme."},
		"prompt":     {Type: genai.TypeString, Description: "A deep, non-judgmental reflective question."},
		"invitation": {Type: genai.TypeString, Description: "A gentle invitation to create art, writing, or music."},
	},
	Required: []string{"title", "prompt", "invitation"},
}

// GeminiGenerator 通过 Gemini API 生成文本，单次请求不重试
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Theme(ctx context.Context) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(themeInstruction), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   themeSchema,
		Temperature:      genai.Ptr[float32](0.7),
	})
	if err != nil {
		return "", fmt.Errorf("gemini theme: %w", err)
	}
	return res.Text(), nil
}

func (g *GeminiGenerator) Prompt(ctx context.Context, emotion string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(promptInstruction(emotion)), nil)
	if err != nil {
		return "", fmt.Errorf("gemini prompt: %w", err)
	}
	return res.Text(), nil
}

func promptInstruction(emotion string) string {
	return fmt.Sprintf("The user is feeling %q. Provide a single, short, 1-sentence gentle creative "+
		"prompt for them to express this feeling through art or writing.", emotion)
}
