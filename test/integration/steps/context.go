// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/quantum-finance/backend/internal/application/usecase/analytics"
	"github.com/quantum-finance/backend/internal/application/usecase/transaction"
	"github.com/quantum-finance/backend/internal/infra/server/router"
	"github.com/quantum-finance/backend/internal/integration/cache"
	"github.com/quantum-finance/backend/internal/integration/entrypoint/controller"
	"github.com/quantum-finance/backend/internal/integration/persistence"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Data store
	dataDir           string
	lastTransactionID string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions. Each scenario gets its
// own server backed by a fresh JSON data file and an in-memory summary cache.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		dataDir, err := os.MkdirTemp("", "quantum-finance-test-*")
		if err != nil {
			return ctx, fmt.Errorf("failed to create data dir: %w", err)
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			dataDir:        dataDir,
		}

		engine, err := newTestEngine(filepath.Join(dataDir, "finance_data.json"))
		if err != nil {
			return ctx, err
		}
		tc.engine = engine
		tc.server = httptest.NewServer(engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.dataDir != "" {
				_ = os.RemoveAll(tc.dataDir)
			}
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// newTestEngine wires the full application against a JSON store.
func newTestEngine(dataFile string) (*gin.Engine, error) {
	store, err := persistence.NewJSONStore(dataFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open json store: %w", err)
	}
	summaryCache := cache.NewMemorySummaryCache()

	listUseCase := transaction.NewListTransactionsUseCase(store)
	createUseCase := transaction.NewCreateTransactionUseCase(store, summaryCache)
	updateUseCase := transaction.NewUpdateTransactionUseCase(store, summaryCache)
	deleteUseCase := transaction.NewDeleteTransactionUseCase(store, summaryCache)
	exportUseCase := transaction.NewExportDataUseCase(store, store)

	summaryUseCase := analytics.NewGetSummaryUseCase(store, summaryCache)
	trendsUseCase := analytics.NewGetTrendsUseCase(store)
	forecastUseCase := analytics.NewForecastUseCase(store, analytics.StrategyLinearRegression, 0)
	anomaliesUseCase := analytics.NewDetectAnomaliesUseCase(store)
	healthScoreUseCase := analytics.NewHealthScoreUseCase(store)
	analyzeUseCase := analytics.NewAnalyzeSpendingUseCase(store)
	recommendationsUseCase := analytics.NewSpendingRecommendationsUseCase(store)
	opportunitiesUseCase := analytics.NewSavingsOpportunitiesUseCase(store)
	insightsUseCase := analytics.NewGetInsightsUseCase(store, nil)
	investmentUseCase := analytics.NewInvestmentAdviceUseCase(store)

	healthController := controller.NewHealthController(func() bool { return true })
	transactionController := controller.NewTransactionController(
		listUseCase,
		createUseCase,
		updateUseCase,
		deleteUseCase,
		exportUseCase,
	)
	analyticsController := controller.NewAnalyticsController(
		summaryUseCase,
		trendsUseCase,
		forecastUseCase,
		anomaliesUseCase,
		healthScoreUseCase,
		analyzeUseCase,
		recommendationsUseCase,
		opportunitiesUseCase,
		insightsUseCase,
		investmentUseCase,
	)
	profileController := controller.NewProfileController(store)

	r := router.NewRouter(healthController, transactionController, analyticsController, profileController)
	return r.Setup("test"), nil
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^a transaction exists with body:$`, aTransactionExistsWithBody)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func aTransactionExistsWithBody(ctx context.Context, body *godog.DocString) (context.Context, error) {
	ctx, err := iSendARequestToWithBody(ctx, http.MethodPost, "/api/v1/transactions", body)
	if err != nil {
		return ctx, err
	}

	tc := GetTestContext(ctx)
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("failed to seed transaction, status %d: %s",
			tc.response.StatusCode, string(tc.responseBody))
	}
	return ctx, nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	return tc.execute(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	return tc.execute(ctx, method, endpoint, []byte(body.Content))
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func (tc *TestContext) execute(ctx context.Context, method, endpoint string, payload []byte) (context.Context, error) {
	endpoint = strings.ReplaceAll(endpoint, "{{transaction_id}}", tc.lastTransactionID)

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, reqBody)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	// Capture the transaction ID for follow-up requests
	var data map[string]any
	if err := json.Unmarshal(tc.responseBody, &data); err == nil {
		if id, ok := data["id"].(string); ok && id != "" {
			tc.lastTransactionID = id
		}
	}

	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.fieldValue(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.fieldValue(field)
	return err
}

// fieldValue resolves a dot-separated path in the JSON response body. Numeric
// path segments index into arrays.
func (tc *TestContext) fieldValue(dotSeparatedField string) (any, error) {
	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, segment := range strings.Split(dotSeparatedField, ".") {
		switch v := current.(type) {
		case map[string]any:
			value, ok := v[segment]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response: %s", dotSeparatedField, string(tc.responseBody))
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(v) {
				return nil, fmt.Errorf("field '%s' not found in response: %s", dotSeparatedField, string(tc.responseBody))
			}
			current = v[index]
		default:
			return nil, fmt.Errorf("field '%s' not found in response: %s", dotSeparatedField, string(tc.responseBody))
		}
	}
	return current, nil
}
