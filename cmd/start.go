package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"alma-utilities/core/alma"
	"alma-utilities/core/config"
	"alma-utilities/core/database"
	"alma-utilities/core/loader"
	"alma-utilities/core/logger"
	"alma-utilities/core/middleware/auth"
	"alma-utilities/core/middleware/rayid"
	"alma-utilities/core/storage"

	"alma-utilities/feature/bibs"
	"alma-utilities/feature/history"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "alma-utilities/docs/swagger"
)

// @title Alma Post-Import Utilities API
// @version 1.0
// @description API for reconciling import datasets against the Alma catalog.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server so front ends can drive reconciliation runs remotely.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the run-history database (optional)
		var db *gorm.DB
		if cfg.Database.Enabled {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Run history database connection failed", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to run history database", zap.String("driver", cfg.Database.Driver))
			}
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Initialize Alma client
		if cfg.Alma.APIKey == "" {
			logg.Warn("No Alma API key configured, lookups will fail (set ALMA_API_KEY)")
		}
		almaClient := alma.NewClient(cfg.Alma, logg)

		// 7. Initialize Features
		mgr := loader.NewManager()

		historyFeature := history.NewFeature(db, logg)
		if historyFeature.IsEnabled() {
			if err := historyFeature.Recorder().Migrate(); err != nil {
				logg.Fatal("Failed to migrate run history schema", zap.Error(err))
			}
		}

		mgr.Register(historyFeature)
		mgr.Register(bibs.NewFeature(store, cfg.Storage.Bucket, almaClient, historyFeature.Recorder(), logg))

		// Middleware Registration
		// RayID must be first so every log line can be traced.
		app.Use(rayid.New())

		// Request logging with Zap + RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger documentation (public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (protect the API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
