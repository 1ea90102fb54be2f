package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Costeo-api/internal/application/auth"
	appcosting "github.com/jhoicas/Costeo-api/internal/application/costing"
	appinventory "github.com/jhoicas/Costeo-api/internal/application/inventory"
	"github.com/jhoicas/Costeo-api/internal/infrastructure/excel"
	httpRouter "github.com/jhoicas/Costeo-api/internal/interfaces/http"
	"github.com/jhoicas/Costeo-api/pkg/config"
	"github.com/jhoicas/Costeo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("libro_entrada", cfg.Excel.InputPath).
		Str("libro_salida", cfg.Excel.OutputPath).
		Msg("iniciando aplicación")

	runner := excel.NewRunnerFromConfig(cfg.Excel)

	runCostingUC := appcosting.NewRunCostingUseCase(runner, appcosting.Paths{
		Input:  cfg.Excel.InputPath,
		Output: cfg.Excel.OutputPath,
	}, log)
	buildHistoryUC := appinventory.NewBuildHistoryUseCase(runner)
	authUC := auth.NewAuthUseCase(auth.Config{
		AdminUser:         cfg.Auth.AdminUser,
		AdminPasswordHash: cfg.Auth.AdminPasswordHash,
		JWTSecret:         cfg.Auth.JWTSecret,
		JWTIssuer:         cfg.Auth.JWTIssuer,
		JWTExpMinutes:     cfg.Auth.JWTExpMinutes,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Duration(cfg.API.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.API.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		RunCosting:   runCostingUC,
		BuildHistory: buildHistoryUC,
		JWTSecret:    cfg.Auth.JWTSecret,
	})

	go func() {
		if err := app.Listen(cfg.API.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
