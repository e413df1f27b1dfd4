package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/nailroom/booking-bot/internal/service"
)

// deleteCallbackPrefix формат callback-данных кнопки удаления: del_<id>
const deleteCallbackPrefix = "del_"

// HandleDeleteCallback обрабатывает нажатие кнопки удаления записи.
// Доступ проверяется заново: кнопка могла быть переслана.
func (h *Handlers) HandleDeleteCallback(ctx context.Context, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil || !strings.HasPrefix(cb.Data, deleteCallbackPrefix) {
		return
	}

	subjectID := cb.From.ID
	chatID := subjectID
	if cb.Message.Message != nil {
		chatID = cb.Message.Message.Chat.ID
	}

	answer := func(text string, alert bool) {
		if err := h.ch.Answer(ctx, cb.ID, text, alert); err != nil {
			h.logger.Error("Failed to answer callback", zap.Error(err))
		}
	}

	if !h.isAdmin(subjectID) {
		h.logger.Warn("Delete denied", zap.Int64("subject_id", subjectID))
		answer("Нет прав", true)
		return
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(cb.Data, deleteCallbackPrefix), 10, 64)
	if err != nil {
		h.logger.Error("Bad delete callback data", zap.String("data", cb.Data), zap.Error(err))
		answer("Ошибка", true)
		return
	}

	err = h.admin.Delete(ctx, id)
	switch {
	case errors.Is(err, service.ErrRecordNotFound):
		// Повторное удаление того же ID даёт тот же ответ
		answer("Запись не найдена", true)
		h.send(ctx, chatID, "Запись не найдена — возможно, её уже удалили.")
	case err != nil:
		h.logger.Error("Failed to delete record", zap.Int64("id", id), zap.Error(err))
		answer("Ошибка", true)
		h.send(ctx, chatID, "⚠️ Не получилось удалить запись. Попробуйте позже.")
	default:
		answer("Удалено", false)
		h.send(ctx, chatID, "Запись удалена.")
	}
}
