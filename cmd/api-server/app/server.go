package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/pquerna/ffjson/ffjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"linestats-api-server/cmd/api-server/app/options"
	"linestats-api-server/internal/api/line"
	"linestats-api-server/internal/api/quota"
	"linestats-api-server/internal/api/report"
	"linestats-api-server/internal/api/speedtest"
	cache2 "linestats-api-server/internal/cache"
	db "linestats-api-server/internal/database"
)

type Server struct {
	app    *fiber.App
	db     *gorm.DB
	cache  *cache2.Cache
	logger *zap.Logger
}

func NewServer(opts *options.Options, logger *zap.Logger) *Server {
	database, err := db.Connect()
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}
	if *opts.Migrate {
		if err := db.Migrate(database); err != nil {
			logger.Fatal("Unable to apply migrations", zap.Error(err))
		}
	}

	cache, err := cache2.NewCache()
	if err != nil {
		logger.Fatal("Unable to init cache", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:     "Line Stats API Server",
		Prefork:     false,
		JSONEncoder: ffjson.Marshal,
	})

	app.Use(cors.New())
	app.Use(compress.New())
	app.Use(etag.New())
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] [${ip}:${port}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	if *opts.Mode == "debug" {
		app.Use(pprof.New())
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(&fiber.Map{
			"status":  "ok",
			"message": "line stats api-server is running",
		})
	})

	// line
	lineLogger := logger.Named("line")
	lineRepository := line.NewLineRepository(database)
	lineService := line.NewLineService(lineRepository, lineLogger)
	line.LineRouter(app, lineService, lineLogger)
	// quota
	quotaLogger := logger.Named("quota")
	quotaRepository := quota.NewQuotaRepository(database)
	quotaService := quota.NewQuotaService(cache, quotaRepository, quotaLogger)
	quota.QuotaRouter(app, quotaService, quotaLogger)
	// speedtest
	speedTestLogger := logger.Named("speedtest")
	speedTestRepository := speedtest.NewSpeedTestRepository(database)
	speedTestService := speedtest.NewSpeedTestService(cache, speedTestRepository, speedTestLogger)
	speedtest.SpeedTestRouter(app, speedTestService, speedTestLogger)
	// report
	reportLogger := logger.Named("report")
	reportRepository := report.NewReportRepository(database)
	reportService := report.NewReportService(cache, reportRepository, reportLogger)
	report.ReportRouter(app, reportService, reportLogger)

	app.Get("/dashboard", monitor.New())

	app.Get("/swagger/*", swagger.Handler) // default

	app.All("*", func(c *fiber.Ctx) error {
		errorMessage := fmt.Sprintf("Route '%s' does not exist in this API!", c.OriginalURL())

		return c.Status(fiber.StatusNotFound).JSON(&fiber.Map{
			"status":  "fail",
			"message": errorMessage,
		})
	})

	return &Server{
		app:    app,
		db:     database,
		cache:  cache,
		logger: logger,
	}
}

func (app *Server) Listen(port int, certFile, keyFile *string) error {
	app.logger.Info("Starting Line Stats api-server ...")

	address := fmt.Sprintf(":%d", port)
	if certFile != nil && keyFile != nil {
		if *certFile != "" && *keyFile != "" {
			return app.app.ListenTLS(address, *certFile, *keyFile)
		}
	}
	return app.app.Listen(address)
}

func (app *Server) Shutdown(parentCtx context.Context) error {
	g, ctx := errgroup.WithContext(parentCtx)
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	g.Go(func() error {
		if err := app.app.Shutdown(); err != nil {
			return err
		}
		return nil
	})
	g.Go(func() error {
		sqlDB, err := app.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})
	g.Go(func() error {
		app.cache.Clear()
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	return nil
}

func Run(opts *options.Options, logger *zap.Logger) error {
	apiServerError := make(chan error)

	server := NewServer(opts, logger)

	go func() {
		if err := server.Listen(*opts.Port, opts.CertFile, opts.KeyFile); err != nil && err != http.ErrServerClosed {
			logger.Error("Listen for api-server failed", zap.Error(err))
			apiServerError <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutdown server ...")

		ctx := context.Background()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("close api-server failed", zap.Error(err))
			return err
		}
	case err := <-apiServerError:
		return err
	}

	return nil
}
