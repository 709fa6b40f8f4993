package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Yalanday/test-selsup/app/controller"
	"github.com/Yalanday/test-selsup/app/router"
	"github.com/Yalanday/test-selsup/config"
	"github.com/Yalanday/test-selsup/logger"
	"github.com/Yalanday/test-selsup/repository"
	"github.com/Yalanday/test-selsup/service"
)

// Initialize loads the catalog, wires the services and returns the HTTP handler
func Initialize(ctx context.Context, cfg config.Config, log *zap.SugaredLogger) (http.Handler, error) {
	log = logger.OrNop(log)

	// Load the catalog seed
	catalogRepo := repository.NewCatalogRepository(cfg.SeedPath, log)
	catalog, err := catalogRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	// Initialize catalog store and editor session
	store := service.NewCatalogStore(catalog.Products, log)
	session := service.NewEditorSession(store, catalog.Params, log)

	// Initialize rendering and image services
	catalogService, err := service.NewCatalogService(cfg.BaseURL, cfg.ChromePath, cfg.ExportTimeout, log)
	if err != nil {
		return nil, err
	}
	imageService := service.NewImageService(cfg.StaticDir, cfg.CacheDir, log)
	if err := imageService.EnsureCacheDir(); err != nil {
		log.Warnf("⚠️  Warning: %v", err)
	}

	// Create controllers
	controllers := &router.Controllers{
		Catalog: controller.NewCatalogController(session, catalogService, imageService, log),
		Editor:  controller.NewEditorController(session, log),
	}

	return router.SetupRoutes(controllers, cfg.ExportTimeout), nil
}
