package handlers

import (
	"go.uber.org/zap"

	"github.com/nailroom/booking-bot/internal/channel"
	"github.com/nailroom/booking-bot/internal/controller/state"
	"github.com/nailroom/booking-bot/internal/service"
)

// Кнопки главного меню
const (
	btnSignUp   = "💅 Записаться"
	btnExamples = "📸 Примеры"
	btnPrice    = "💰 Прайс-лист"
	btnAdmin    = "👑 Админка"
)

// Handlers содержит все зависимости для обработки команд и диалогов
type Handlers struct {
	ch        channel.Channel
	booking   *service.BookingService
	admin     *service.AdminService
	states    *state.Manager
	admins    []int64
	photosDir string
	logger    *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	ch channel.Channel,
	booking *service.BookingService,
	admin *service.AdminService,
	states *state.Manager,
	admins []int64,
	photosDir string,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		ch:        ch,
		booking:   booking,
		admin:     admin,
		states:    states,
		admins:    admins,
		photosDir: photosDir,
		logger:    logger,
	}
}
