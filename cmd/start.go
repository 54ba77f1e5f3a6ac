package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mini-reconcile/core/config"
	"mini-reconcile/core/database"
	"mini-reconcile/core/loader"
	"mini-reconcile/core/logger"
	"mini-reconcile/core/middleware/auth"
	"mini-reconcile/core/middleware/rayid"
	"mini-reconcile/core/reconcile"
	"mini-reconcile/core/storage"

	"mini-reconcile/feature/recon"
	"mini-reconcile/feature/statements"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "mini-reconcile/docs/swagger"
)

// @title Mini Reconcile API
// @version 1.0
// @description API for reconciling transaction statements.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciliation server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
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

		// 3. Load Rules
		rules, err := reconcile.LoadRules(cfg.Recon.RulesPath)
		if err != nil {
			logg.Fatal("Failed to load rules", zap.Error(err))
		}
		logg.Info("Rules loaded", zap.String("merge_key", rules.MergeKey))

		// 4. Connect to Ledger Database (Optional)
		// Runs without it; only the ledger-backed source is disabled.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional ledger database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to ledger database")
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimitBytes(),
		})

		// 6. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		st := statements.NewService(store, cfg.Storage.Bucket, db, logg,
			time.Duration(cfg.Recon.CacheTTLSeconds)*time.Second)
		mgr.Register(statements.NewFeature(st))
		mgr.Register(recon.NewFeature(recon.NewService(st, rules, logg), logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
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
