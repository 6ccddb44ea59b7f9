package main

import (
	"context"
	"fmt"
	"log"

	common_api "go-shipdata/internal/common/api"
	"go-shipdata/internal/config"
	"go-shipdata/internal/database"
	"go-shipdata/internal/features/export"
	"go-shipdata/internal/features/report"
	"go-shipdata/internal/features/saved_search"
	"go-shipdata/internal/features/schedule"
	"go-shipdata/internal/features/search"
	"go-shipdata/internal/features/shipment"
	"go-shipdata/internal/features/stats"
	"go-shipdata/internal/features/system"
	"go-shipdata/internal/logger"
	"go-shipdata/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	log.Printf("Registering %d routes...\n", len(routes))
	for _, route := range routes {
		route.Setup(app)
	}
	log.Println("All routes registered successfully")
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Databases
			database.NewDatabase,
			database.NewPostgres,

			// Initialize Repository
			shipment.NewShipmentRepository,
			stats.NewStatsRepository,
			saved_search.NewSavedSearchRepository,
			report.NewReportRepository,
			schedule.NewScheduleRepository,

			// Initialize Service
			shipment.NewShipmentService,
			stats.NewStatsService,
			search.NewSearchService,
			export.NewExportService,
			saved_search.NewSavedSearchService,
			report.NewReportService,
			schedule.NewScheduleService,

			// Interface Adapters to break circular dependencies and satisfy Fx
			func(s schedule.ScheduleService) report.ScheduleCascade { return s },

			// Initialize Controller
			shipment.NewShipmentController,
			stats.NewStatsController,
			search.NewSearchController,
			export.NewExportController,
			saved_search.NewSavedSearchController,
			report.NewReportController,
			schedule.NewScheduleController,
			system.NewHealthController,

			// Initialize API Routes
			AsRoute(shipment.NewShipmentApi),
			AsRoute(stats.NewStatsApi),
			AsRoute(search.NewSearchApi),
			AsRoute(export.NewExportApi),
			AsRoute(saved_search.NewSavedSearchApi),
			AsRoute(report.NewReportApi),
			AsRoute(schedule.NewScheduleApi),
			AsRoute(system.NewHealthApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, scheduleService schedule.ScheduleService) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return scheduleService.InitializeScheduler(ctx)
					},
					OnStop: func(ctx context.Context) error {
						return scheduleService.StopScheduler()
					},
				})
			},
		),
	)

	app.Run()
}
