package digest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/application/usecase/analytics"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// Service builds and sends the digest email summarizing the current snapshot.
type Service struct {
	transactionRepo adapter.TransactionRepository
	sender          adapter.EmailSender
	recipientName   string
	recipientEmail  string
}

// NewService creates a new digest service.
func NewService(
	transactionRepo adapter.TransactionRepository,
	sender adapter.EmailSender,
	recipientName string,
	recipientEmail string,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		sender:          sender,
		recipientName:   recipientName,
		recipientEmail:  recipientEmail,
	}
}

// SendDigest computes the summary and health score and mails them.
func (s *Service) SendDigest(ctx context.Context, now time.Time) (*adapter.SendEmailResult, error) {
	snapshot, err := s.transactionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}

	summary := analytics.ComputeSummary(snapshot, now)
	score := analytics.ComputeHealthScore(snapshot)

	subject := fmt.Sprintf("Your financial digest for %s", now.Format("January 2006"))
	html, text := renderDigest(s.recipientName, summary, score, now)

	result, err := s.sender.Send(ctx, adapter.SendEmailInput{
		To:      s.recipientEmail,
		Subject: subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send digest: %w", err)
	}
	return result, nil
}

// renderDigest produces the HTML and plain-text bodies.
func renderDigest(name string, summary *entity.FinancialSummary, score *entity.HealthScore, now time.Time) (string, string) {
	greeting := "Hello"
	if name != "" {
		greeting = "Hello " + name
	}

	lines := []string{
		fmt.Sprintf("%s, here is your digest for %s.", greeting, now.Format("January 2006")),
		"",
		fmt.Sprintf("Total income: %s", summary.TotalIncome.StringFixed(2)),
		fmt.Sprintf("Total expenses: %s", summary.TotalExpenses.StringFixed(2)),
		fmt.Sprintf("Net balance: %s", summary.NetBalance.StringFixed(2)),
		fmt.Sprintf("Savings rate: %.1f%%", summary.SavingsRate),
		fmt.Sprintf("Health score: %.1f / 100", score.Score),
	}
	if len(score.Recommendations) > 0 {
		lines = append(lines, "", "Recommendations:")
		for _, rec := range score.Recommendations {
			lines = append(lines, "- "+rec)
		}
	}
	text := strings.Join(lines, "\n")

	var html strings.Builder
	html.WriteString("<html><body>")
	html.WriteString(fmt.Sprintf("<p>%s, here is your digest for %s.</p>", greeting, now.Format("January 2006")))
	html.WriteString("<ul>")
	html.WriteString(fmt.Sprintf("<li>Total income: %s</li>", summary.TotalIncome.StringFixed(2)))
	html.WriteString(fmt.Sprintf("<li>Total expenses: %s</li>", summary.TotalExpenses.StringFixed(2)))
	html.WriteString(fmt.Sprintf("<li>Net balance: %s</li>", summary.NetBalance.StringFixed(2)))
	html.WriteString(fmt.Sprintf("<li>Savings rate: %.1f%%</li>", summary.SavingsRate))
	html.WriteString(fmt.Sprintf("<li>Health score: %.1f / 100</li>", score.Score))
	html.WriteString("</ul>")
	if len(score.Recommendations) > 0 {
		html.WriteString("<p>Recommendations:</p><ul>")
		for _, rec := range score.Recommendations {
			html.WriteString("<li>" + rec + "</li>")
		}
		html.WriteString("</ul>")
	}
	html.WriteString("</body></html>")

	return html.String(), text
}
