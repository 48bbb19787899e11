package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"goodshelf/internal/catalog"
	"goodshelf/internal/config"
	"goodshelf/internal/database"
	"goodshelf/internal/database/books"
	"goodshelf/internal/database/settings"
	"goodshelf/internal/database/shelves"
	http_controllers "goodshelf/internal/http"
	"goodshelf/internal/metadata"
	"goodshelf/internal/scheduler"
	"goodshelf/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting GoodShelf v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	bookRepo := books.NewRepository(db.DB)
	shelfRepo := shelves.NewRepository(db.DB)
	settingsRepo := settings.NewRepository(db.DB)

	// Remote catalog client, shared by search and enrichment
	catalogClient := catalog.NewClientWithBaseURL(cfg.Catalog.BaseURL)
	enricher := metadata.NewEnricher(catalogClient, bookRepo)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewEnrichBookQueue(enricher),
			tasks.NewEnrichAllBooksQueue(enricher),
		)

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Start the periodic enrichment scheduler if enabled. It needs the
	// task queue to enqueue work.
	var enrichScheduler *scheduler.EnrichSyncScheduler
	if cfg.EnrichSync.Enabled {
		if taskClient == nil {
			log.Printf("WARNING: enrichment sync enabled but task queue is disabled; skipping scheduler")
		} else {
			enrichScheduler = scheduler.NewEnrichSyncScheduler(taskClient, settingsRepo, cfg.EnrichSync.Schedule)
			if err := enrichScheduler.Start(); err != nil {
				log.Fatalf("Failed to start enrichment scheduler: %v", err)
			}
		}
	}

	routerCfg := http_controllers.RouterConfig{
		BookStore:  bookRepo,
		ShelfStore: shelfRepo,
		GoalStore:  settingsRepo,
		Catalog:    catalogClient,
		Database:   db,
		TaskClient: taskClient,
		Version:    version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if enrichScheduler != nil {
			enrichScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
