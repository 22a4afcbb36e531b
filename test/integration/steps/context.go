// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/spendlens/backend/internal/application/usecase/auth"
	"github.com/spendlens/backend/internal/application/usecase/budget"
	"github.com/spendlens/backend/internal/application/usecase/dashboard"
	"github.com/spendlens/backend/internal/application/usecase/report"
	"github.com/spendlens/backend/internal/application/usecase/transaction"
	"github.com/spendlens/backend/internal/infra/server/router"
	"github.com/spendlens/backend/internal/integration/adapters"
	"github.com/spendlens/backend/internal/integration/entrypoint/controller"
	"github.com/spendlens/backend/internal/integration/entrypoint/middleware"
	"github.com/spendlens/backend/internal/integration/persistence"
	"github.com/spendlens/backend/test/integration/mock"
)

const testJWTSecret = "integration-test-secret"

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	token string
}

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

// buildEngine wires the full application against the in-memory database
// and redis, exactly as main does against the real ones.
func buildEngine() *gin.Engine {
	dbConn := mock.NewDb().DbConn
	redisClient := mock.NewRedis()

	userRepo := persistence.NewUserRepository(dbConn)
	accountRepo := persistence.NewAccountRepository(dbConn)
	categoryRepo := persistence.NewCategoryRepository(dbConn)
	transactionRepo := persistence.NewTransactionRepository(dbConn)
	budgetRepo := persistence.NewBudgetRepository(dbConn)
	dashboardRepo := persistence.NewDashboardRepository(dbConn)
	reportRepo := persistence.NewReportRepository(dbConn)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)

	healthController := controller.NewHealthController(dbConn)
	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
	)
	dashboardController := controller.NewDashboardController(
		dashboard.NewGetMetricsUseCase(dashboardRepo),
		dashboard.NewGetBudgetSummaryUseCase(dashboardRepo),
		dashboard.NewGetTopCategoriesUseCase(dashboardRepo),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo, categoryRepo),
		transaction.NewListTransactionsUseCase(transactionRepo),
		transaction.NewExportTransactionsUseCase(transactionRepo),
	)
	budgetController := controller.NewBudgetController(
		budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo),
		budget.NewListBudgetsUseCase(budgetRepo),
	)
	reportController := controller.NewReportController(
		report.NewGetMonthlyReportUseCase(reportRepo),
		report.NewGetYearlyReportUseCase(reportRepo),
	)

	r := router.NewRouter(
		healthController,
		authController,
		dashboardController,
		transactionController,
		budgetController,
		reportController,
		middleware.NewRateLimiterWithConfig(redisClient, 100, time.Minute),
		middleware.NewAuthMiddleware(tokenService),
	)
	return r.Setup("test")
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := mock.NewDb().Reset(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}

		tc := &TestContext{}
		tc.server = httptest.NewServer(buildEngine())
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am a registered user$`, iAmARegisteredUser)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I have recorded a transaction of (\d+) for "([^"]*)" today$`, iHaveRecordedATransactionToday)
	ctx.Step(`^I have recorded an income of (\d+) for "([^"]*)" today$`, iHaveRecordedAnIncomeToday)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response array should have (\d+) items$`, theResponseArrayShouldHaveItems)
	ctx.Step(`^the response content type should be "([^"]*)"$`, theResponseContentTypeShouldBe)
}
