package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nailroom/booking-bot/internal/app"
	"github.com/nailroom/booking-bot/internal/channel"
	"github.com/nailroom/booking-bot/internal/config"
	"github.com/nailroom/booking-bot/internal/controller"
	"github.com/nailroom/booking-bot/internal/repository"
	"github.com/nailroom/booking-bot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting booking bot",
		"environment", cfg.Environment,
		"admins", len(cfg.AdminIDs))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create db pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	recordRepo := repository.NewRecordRepository(pool)
	bookingService := service.NewBookingService(recordRepo, logger)
	adminService := service.NewAdminService(recordRepo, logger)

	botController := controller.NewBotController(
		botInstance,
		channel.NewTelegram(botInstance),
		bookingService,
		adminService,
		cfg.AdminIDs,
		cfg.PhotosDir,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot stopped")
}
