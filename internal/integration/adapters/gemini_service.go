// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// GeminiService implements the AdvisorService using Google Gemini. The
// figures it narrates are computed locally; the model only adds prose and is
// never trusted to produce numbers of its own.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Narrate turns a health score and summary into free-text insights.
func (s *GeminiService) Narrate(
	ctx context.Context,
	score *entity.HealthScore,
	summary *entity.FinancialSummary,
) ([]string, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(score, summary)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	insights, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return insights, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(score *entity.HealthScore, summary *entity.FinancialSummary) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance advisor. You receive precomputed figures for one person's finances and write short, practical insights.

RULES:
- Use ONLY the figures provided below. Never invent numbers.
- Each insight is one sentence, plain language, actionable where possible.
- Return between 2 and 5 insights.

FIGURES:
`)

	sb.WriteString(fmt.Sprintf("- Health score: %.1f / 100\n", score.Score))
	if score.Breakdown != nil {
		sb.WriteString(fmt.Sprintf("- Savings rate: %.1f%%\n", score.Breakdown.SavingsRate))
		sb.WriteString(fmt.Sprintf("- Expense ratio: %.1f%%\n", score.Breakdown.ExpenseRatio))
		sb.WriteString(fmt.Sprintf("- Income diversity score: %.1f / 100\n", score.Breakdown.DiversityScore))
		sb.WriteString(fmt.Sprintf("- Income growth score: %.1f / 100\n", score.Breakdown.GrowthScore))
	}
	sb.WriteString(fmt.Sprintf("- Total income: %s\n", summary.TotalIncome.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Total expenses: %s\n", summary.TotalExpenses.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Net balance: %s\n", summary.NetBalance.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Transaction count: %d\n", summary.TransactionCount))

	sb.WriteString(`
RESPONSE FORMAT: Return only a JSON array of strings, no additional text.
`)

	return sb.String()
}

// parseResponse parses the Gemini response into insight strings.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var insights []string
	if err := json.Unmarshal([]byte(textContent), &insights); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	cleaned := make([]string, 0, len(insights))
	for _, insight := range insights {
		if trimmed := strings.TrimSpace(insight); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned, nil
}

var _ adapter.AdvisorService = (*GeminiService)(nil)
