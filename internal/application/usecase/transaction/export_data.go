package transaction

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
	domainerror "github.com/quantum-finance/backend/internal/domain/error"
)

// Export formats.
const (
	ExportFormatJSON = "json"
	ExportFormatCSV  = "csv"
)

// ExportDataInput represents the input for exporting data.
type ExportDataInput struct {
	Format string
}

// ExportDataOutput holds the rendered export.
type ExportDataOutput struct {
	ContentType string
	Data        []byte
}

// exportedTransaction is the wire shape of one transaction in an export.
type exportedTransaction struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Amount      string   `json:"amount"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// exportDocument is the wire shape of a full JSON export.
type exportDocument struct {
	Transactions []exportedTransaction `json:"transactions"`
	Portfolio    exportedPortfolio     `json:"portfolio"`
	UserProfile  exportedProfile       `json:"user_profile"`
	ExportDate   string                `json:"export_date"`
}

type exportedPortfolio struct {
	TotalValue  string             `json:"total_value"`
	Allocations map[string]float64 `json:"allocations"`
}

type exportedProfile struct {
	Name          string   `json:"name"`
	RiskTolerance string   `json:"risk_tolerance"`
	IncomeSources []string `json:"income_sources"`
}

// ExportDataUseCase renders the full data set as JSON or CSV.
type ExportDataUseCase struct {
	transactionRepo adapter.TransactionRepository
	profileRepo     adapter.ProfileRepository
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(
	transactionRepo adapter.TransactionRepository,
	profileRepo adapter.ProfileRepository,
) *ExportDataUseCase {
	return &ExportDataUseCase{
		transactionRepo: transactionRepo,
		profileRepo:     profileRepo,
	}
}

// Execute renders the export in the requested format.
func (uc *ExportDataUseCase) Execute(ctx context.Context, input ExportDataInput) (*ExportDataOutput, error) {
	transactions, err := uc.transactionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}
	// Stable chronological order in exports.
	sort.Slice(transactions, func(i, j int) bool {
		if transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].ID < transactions[j].ID
		}
		return transactions[i].Date.Before(transactions[j].Date)
	})

	switch strings.ToLower(strings.TrimSpace(input.Format)) {
	case ExportFormatJSON, "":
		return uc.exportJSON(ctx, transactions)
	case ExportFormatCSV:
		return uc.exportCSV(transactions)
	default:
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnsupportedExportFormat,
			fmt.Sprintf("unsupported export format %q", input.Format),
			domainerror.ErrUnsupportedExportFormat,
		)
	}
}

func (uc *ExportDataUseCase) exportJSON(ctx context.Context, transactions []*entity.Transaction) (*ExportDataOutput, error) {
	portfolio, err := uc.profileRepo.GetPortfolio(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}
	profile, err := uc.profileRepo.GetUserProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}

	doc := exportDocument{
		Transactions: make([]exportedTransaction, 0, len(transactions)),
		Portfolio: exportedPortfolio{
			TotalValue:  portfolio.TotalValue.StringFixed(2),
			Allocations: portfolio.Allocations,
		},
		UserProfile: exportedProfile{
			Name:          profile.Name,
			RiskTolerance: string(profile.RiskTolerance),
			IncomeSources: profile.IncomeSources,
		},
		ExportDate: time.Now().UTC().Format(time.RFC3339),
	}
	for _, t := range transactions {
		doc.Transactions = append(doc.Transactions, toExported(t))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}

	return &ExportDataOutput{ContentType: "application/json", Data: data}, nil
}

func (uc *ExportDataUseCase) exportCSV(transactions []*entity.Transaction) (*ExportDataOutput, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "date", "amount", "category", "type", "description", "tags", "status"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, t := range transactions {
		row := []string{
			t.ID,
			t.Date.Format(entity.DateLayout),
			t.Amount.StringFixed(2),
			string(t.Category),
			t.Type,
			t.Description,
			strings.Join(t.Tags, ";"),
			string(t.Status),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return &ExportDataOutput{ContentType: "text/csv", Data: buf.Bytes()}, nil
}

func toExported(t *entity.Transaction) exportedTransaction {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return exportedTransaction{
		ID:          t.ID,
		Date:        t.Date.Format(entity.DateLayout),
		Amount:      t.Amount.StringFixed(2),
		Category:    string(t.Category),
		Type:        t.Type,
		Description: t.Description,
		Tags:        tags,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
