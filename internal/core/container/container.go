package container

import (
	"context"
	"database/sql"
	"os"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ypremchand/Equipment-Management-sub000/internal/assignments"
	"github.com/ypremchand/Equipment-Management-sub000/internal/audit"
	"github.com/ypremchand/Equipment-Management-sub000/internal/catalog"
	"github.com/ypremchand/Equipment-Management-sub000/internal/damage"
	"github.com/ypremchand/Equipment-Management-sub000/internal/integrations/googlesheets"
	"github.com/ypremchand/Equipment-Management-sub000/internal/inventory"
	"github.com/ypremchand/Equipment-Management-sub000/internal/locations"
	"github.com/ypremchand/Equipment-Management-sub000/internal/repository"
	"github.com/ypremchand/Equipment-Management-sub000/internal/requests"
	"github.com/ypremchand/Equipment-Management-sub000/internal/users"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/security"
)

type Container struct {
	Repository           *repository.Repository
	Logger               *zap.Logger
	LoginHandler         *security.LoginHandler
	CatalogHandler       *catalog.CatalogHandler
	LocationHandler      *locations.LocationHandler
	UserHandler          *users.UsersHandler
	RequestHandler       *requests.RequestHandler
	InventoryHandler     *inventory.ItemHandler
	AssignmentHandler    *assignments.AssignmentHandler
	DamageHandler        *damage.DamageHandler
	DeleteHistoryHandler *audit.DeleteHistoryHandler
	ReportHandler        *googlesheets.ReportHandler
}

func NewAppContainer(db *sql.DB, logger *zap.Logger) *Container {
	repo := repository.NewRepository(db)

	itemStore := inventory.NewItemStore(repo)

	catalogRepo := catalog.NewRepository(repo)
	catalogService := catalog.NewService(catalogRepo, itemStore, logger)
	catalogHandler := catalog.NewHandler(catalogService)
	inventoryHandler := inventory.NewItemHandler(itemStore, catalogRepo)

	userRepo := users.NewRepository(repo)
	userHandler := users.NewHandler(userRepo)
	loginHandler := security.NewLoginHandler(repo)

	locationRepo := locations.NewLocationRepository(repo)
	locationHandler := locations.NewLocationHandler(locationRepo)

	auditRepo := audit.NewRepository(repo)
	auditHandler := audit.NewHandler(auditRepo)

	damageRepo := damage.NewRepository(repo)
	damageService := damage.NewService(repo, damageRepo, itemStore, logger)
	damageHandler := damage.NewHandler(damageService)

	requestRepo := requests.NewRepository(repo)
	assignmentRepo := assignments.NewRepository(repo)
	requestService := requests.NewService(requestRepo, catalogRepo, userRepo, assignmentRepo, itemStore, logger)
	requestHandler := requests.NewHandler(requestService)

	assignmentService := assignments.NewService(repo, requestRepo, assignmentRepo, itemStore, damageRepo, auditRepo, catalogRepo, logger)
	assignmentHandler := assignments.NewHandler(assignmentService)

	reportService := googlesheets.NewInventoryReportService(
		newSheetsService(logger),
		os.Getenv("SHEETS_SPREADSHEET_ID"),
		logger,
	)
	reportHandler := googlesheets.NewReportHandler(reportService, catalogService)

	return &Container{
		Repository:           repo,
		Logger:               logger,
		LoginHandler:         loginHandler,
		CatalogHandler:       catalogHandler,
		LocationHandler:      locationHandler,
		UserHandler:          userHandler,
		RequestHandler:       requestHandler,
		InventoryHandler:     inventoryHandler,
		AssignmentHandler:    assignmentHandler,
		DamageHandler:        damageHandler,
		DeleteHistoryHandler: auditHandler,
		ReportHandler:        reportHandler,
	}
}

// newSheetsService returns nil when the integration is not configured; the
// report handler answers 503 in that case.
func newSheetsService(logger *zap.Logger) *sheets.Service {
	credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsFile == "" {
		return nil
	}

	service, err := sheets.NewService(context.Background(), option.WithCredentialsFile(credentialsFile))
	if err != nil {
		logger.Warn("unable to initialize google sheets client", zap.Error(err))
		return nil
	}

	return service
}
