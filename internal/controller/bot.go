package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/nailroom/booking-bot/internal/channel"
	"github.com/nailroom/booking-bot/internal/controller/handlers"
	"github.com/nailroom/booking-bot/internal/controller/state"
	"github.com/nailroom/booking-bot/internal/service"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	ch channel.Channel,
	bookingService *service.BookingService,
	adminService *service.AdminService,
	admins []int64,
	photosDir string,
	logger *zap.Logger,
) *BotController {
	// Менеджер сессий живёт только в памяти процесса
	stateManager := state.NewManager()

	cmdHandlers := handlers.NewHandlers(
		ch,
		bookingService,
		adminService,
		stateManager,
		admins,
		photosDir,
		logger,
	)

	return &BotController{
		bot:      botInstance,
		handlers: cmdHandlers,
		logger:   logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, wrap(c.handlers.HandleStart))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/sign_up", bot.MatchTypeExact, wrap(c.handlers.HandleSignUp))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/admin", bot.MatchTypeExact, wrap(c.handlers.HandleAdmin))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, wrap(c.handlers.HandleCancel))

	// Текстовые сообщения: кнопки меню и шаги диалогов
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, wrap(c.handlers.HandleText))

	// Inline-кнопки удаления записей
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "del_", bot.MatchTypePrefix, wrap(c.handlers.HandleDeleteCallback))

	return c.setCommands(ctx)
}

// wrap адаптирует обработчик к сигнатуре bot.HandlerFunc.
// Обработчики не зависят от *bot.Bot: транспорт у них за интерфейсом Channel.
func wrap(f func(context.Context, *models.Update)) bot.HandlerFunc {
	return func(ctx context.Context, _ *bot.Bot, update *models.Update) {
		f(ctx, update)
	}
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "sign_up", Description: "💅 Записаться на маникюр"},
		{Command: "cancel", Description: "❌ Отменить текущий диалог"},
		{Command: "admin", Description: "👑 Админка (для администраторов)"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
