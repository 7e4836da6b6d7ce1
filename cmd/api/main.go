package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nmthanh/backoffice-api/internal/application/history"
	"github.com/nmthanh/backoffice-api/internal/application/notify"
	"github.com/nmthanh/backoffice-api/internal/application/stats"
	"github.com/nmthanh/backoffice-api/internal/application/store"
	"github.com/nmthanh/backoffice-api/internal/application/usecase"
	"github.com/nmthanh/backoffice-api/internal/domain/entity"
	infrapdf "github.com/nmthanh/backoffice-api/internal/infrastructure/pdf"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/remote"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/seed"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/spreadsheet"
	"github.com/nmthanh/backoffice-api/internal/infrastructure/storage"
	httpRouter "github.com/nmthanh/backoffice-api/internal/interfaces/http"
	"github.com/nmthanh/backoffice-api/pkg/config"
	"github.com/nmthanh/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("starting application")

	ctx := context.Background()
	driver, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("open storage")
	}
	defer driver.Close()

	itemID := func(it *entity.Item) string { return it.ID }
	itemMatch := func(it *entity.Item, kw string) bool {
		return strings.Contains(strings.ToLower(it.Name), kw)
	}
	ingredients := store.NewEntityStore(
		store.NewCollection(driver, storage.KeyIngredients, seed.Ingredients), itemID, itemMatch)
	products := store.NewEntityStore(
		store.NewCollection(driver, storage.KeyProducts, seed.Products), itemID, itemMatch)
	categories := store.NewEntityStore(
		store.NewCollection(driver, storage.KeyCategories, seed.Categories),
		func(c *entity.Category) string { return c.ID },
		usecase.CategorySearchMatches,
	)
	employees := store.NewEntityStore(
		store.NewCollection(driver, storage.KeyEmployees, seed.Employees),
		func(e *entity.Employee) string { return e.ID },
		func(e *entity.Employee, kw string) bool {
			return strings.Contains(strings.ToLower(e.Username), kw) ||
				strings.Contains(strings.ToLower(e.FullName), kw)
		},
	)

	auditLog := history.NewLog(store.NewCollection(driver, storage.KeyHistory, seed.History))
	aggregator := stats.NewAggregator(ingredients, products)
	notifier := notify.New(cfg.Notify.Duration, cfg.Notify.Fade)
	client := remote.NewClient(cfg.Remote.Latency)

	employeeUC := usecase.NewEmployeeUseCase(employees)
	exportUC := usecase.NewExportUseCase(
		cfg.Export.Dir, spreadsheet.NewWorkbook(), infrapdf.NewItemReport(), auditLog, notifier)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Warehouse Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       usecase.NewAuthUseCase(employeeUC, cfg.JWT),
		IngredientUC: usecase.NewItemUseCase(ingredients, auditLog, client),
		ProductUC:    usecase.NewItemUseCase(products, auditLog, client),
		CategoryUC:   usecase.NewCategoryUseCase(categories, aggregator, auditLog, client),
		EmployeeUC:   employeeUC,
		ExportUC:     exportUC,
		History:      auditLog,
		Aggregator:   aggregator,
		Notifier:     notifier,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
