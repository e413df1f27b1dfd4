package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/nailroom/booking-bot/internal/controller/state"
)

// HandleStart обрабатывает команду /start: приветствие и главное меню
func (h *Handlers) HandleStart(ctx context.Context, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	menu := []string{btnSignUp, btnExamples, btnPrice}
	if h.isAdmin(chatID) {
		menu = append(menu, btnAdmin)
	}

	hello := "<b>Добро пожаловать!</b>\n\n" +
		"Я помогу вам записаться на маникюр 🌸\n" +
		"Работаю ежедневно с <b>12:00</b> до <b>19:00</b>.\n\n" +
		"Выберите действие👇"

	h.sendChoices(ctx, chatID, hello, menu)
	h.logger.Info("Start", zap.Int64("chat_id", chatID))
}

// HandleSignUp обрабатывает команду /sign_up
func (h *Handlers) HandleSignUp(ctx context.Context, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	unlock := h.states.Acquire(chatID)
	defer unlock()

	h.startBooking(ctx, chatID)
}

// HandleAdmin обрабатывает команду /admin
func (h *Handlers) HandleAdmin(ctx context.Context, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	unlock := h.states.Acquire(chatID)
	defer unlock()

	h.startAdmin(ctx, chatID)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	unlock := h.states.Acquire(chatID)
	defer unlock()

	if h.states.Step(chatID) == state.StepNone {
		h.send(ctx, chatID, "Нет активных операций для отмены.")
		return
	}

	h.states.Clear(chatID)
	h.sendHide(ctx, chatID, "✅ Операция отменена. Напишите /start")
	h.logger.Info("Dialog canceled", zap.Int64("chat_id", chatID))
}

// HandleText обрабатывает текстовые сообщения: кнопки главного меню и
// шаги активного диалога. Сообщения одного пользователя обрабатываются
// строго по одному.
func (h *Handlers) HandleText(ctx context.Context, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	text := update.Message.Text
	// Команды обрабатываются своими handlers
	if strings.HasPrefix(text, "/") {
		return
	}

	chatID := update.Message.Chat.ID

	unlock := h.states.Acquire(chatID)
	defer unlock()

	h.logger.Debug("Text message",
		zap.Int64("chat_id", chatID),
		zap.String("text", text),
		zap.Int("step", int(h.states.Step(chatID))))

	// Кнопки главного меню работают из любого состояния
	switch text {
	case btnSignUp:
		h.startBooking(ctx, chatID)
		return
	case btnExamples:
		h.sendExamples(ctx, chatID)
		return
	case btnPrice:
		h.sendPrice(ctx, chatID)
		return
	case btnAdmin:
		h.startAdmin(ctx, chatID)
		return
	}

	sess, ok := h.states.Get(chatID)
	if !ok {
		h.send(ctx, chatID, "Напишите /start")
		return
	}

	switch sess.Step {
	case state.StepService:
		h.stepService(ctx, chatID, sess, text)
	case state.StepName:
		h.stepName(ctx, chatID, sess, text)
	case state.StepPhone:
		h.stepPhone(ctx, chatID, sess, text)
	case state.StepDate:
		h.stepDate(ctx, chatID, sess, text)
	case state.StepTime:
		h.stepTime(ctx, chatID, sess, text)
	case state.StepAdminYear:
		h.stepAdminYear(ctx, chatID, sess, text)
	case state.StepAdminMonth:
		h.stepAdminMonth(ctx, chatID, sess, text)
	case state.StepAdminDay:
		h.stepAdminDay(ctx, chatID, sess, text)
	default:
		h.logger.Warn("Unknown step",
			zap.Int64("chat_id", chatID),
			zap.Int("step", int(sess.Step)))
		h.states.Clear(chatID)
		h.send(ctx, chatID, "Напишите /start")
	}
}
