// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/usecase/category"
	"github.com/budget-tracker/backend/internal/application/usecase/statistics"
	"github.com/budget-tracker/backend/internal/application/usecase/transaction"
	"github.com/budget-tracker/backend/internal/infra/server/router"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// statsCache may be nil; statistics then recompute on every request.
func NewInjector(cfg *config.Config, db *gorm.DB, statsCache adapter.StatsCache, cacheHealthChecker func() bool) *Injector {
	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, statsCache)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, statsCache)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo, statsCache)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, categoryRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo, categoryRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, statsCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, statsCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, statsCache)

	// Create statistics use cases
	overallStatisticsUseCase := statistics.NewGetOverallStatisticsUseCase(transactionRepo, statsCache)
	categoryStatisticsUseCase := statistics.NewGetCategoryStatisticsUseCase(transactionRepo, categoryRepo, statsCache)
	monthlyStatisticsUseCase := statistics.NewGetMonthlyStatisticsUseCase(transactionRepo, statsCache)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		getCategoryUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	statisticsController := controller.NewStatisticsController(
		overallStatisticsUseCase,
		categoryStatisticsUseCase,
		monthlyStatisticsUseCase,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: router.NewRouter(
			healthController,
			categoryController,
			transactionController,
			statisticsController,
		),
	}
}
