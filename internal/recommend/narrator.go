package recommend

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nurpe/cleaning-estimator/internal/model"
)

const defaultGeminiModel = "gemini-2.0-flash"

// Narrator writes a short customer-facing summary of an estimate.
type Narrator interface {
	Summarize(ctx context.Context, p model.ProjectDescription, est model.EstimateResult, recs []string) (string, error)
}

type textModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type LLMNarrator struct {
	model textModel
}

func NewLLMNarrator(m textModel) *LLMNarrator {
	return &LLMNarrator{model: m}
}

// NewGeminiNarrator returns nil when apiKey is empty.
func NewGeminiNarrator(ctx context.Context, apiKey, modelName string) (*LLMNarrator, error) {
	if apiKey == "" {
		return nil, nil
	}
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return NewLLMNarrator(&geminiModel{client: client, name: modelName}), nil
}

func (n *LLMNarrator) Summarize(ctx context.Context, p model.ProjectDescription, est model.EstimateResult, recs []string) (string, error) {
	text, err := n.model.GenerateText(ctx, buildPrompt(p, est, recs))
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty summary")
	}
	return text, nil
}

func buildPrompt(p model.ProjectDescription, est model.EstimateResult, recs []string) string {
	var b strings.Builder
	b.WriteString("You are an estimator for a commercial post-construction cleaning company. ")
	b.WriteString("Write a friendly 2-3 sentence summary of this estimate for the customer. ")
	b.WriteString("Do not change any numbers and do not invent services.\n\n")
	fmt.Fprintf(&b, "Project type: %s\n", p.ProjectType)
	fmt.Fprintf(&b, "Cleaning stage: %s\n", p.CleaningType)
	fmt.Fprintf(&b, "Square footage: %.0f\n", p.SquareFootage)
	fmt.Fprintf(&b, "Total price: $%.2f\n", est.TotalPrice)
	fmt.Fprintf(&b, "Labor hours: %.1f, crew of %d, about %d day(s)\n", est.EstimatedHours, est.CrewSize, est.EstimatedDays)
	b.WriteString("Line items:\n")
	for _, adj := range est.Adjustments {
		fmt.Fprintf(&b, "- %s: $%.2f\n", adj.Label, adj.Amount)
	}
	if len(recs) > 0 {
		b.WriteString("Recommendations:\n")
		for _, r := range recs {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}
	return b.String()
}

type geminiModel struct {
	client *genai.Client
	name   string
}

func (g *geminiModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.name, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return resp.Text(), nil
}
