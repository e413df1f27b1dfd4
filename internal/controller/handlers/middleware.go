package handlers

import (
	"context"

	"go.uber.org/zap"
)

// isAdmin проверяет подписчика по списку администраторов
func (h *Handlers) isAdmin(chatID int64) bool {
	for _, id := range h.admins {
		if id == chatID {
			return true
		}
	}
	return false
}

// send отправляет сообщение и логирует если не удалось
func (h *Handlers) send(ctx context.Context, chatID int64, text string) {
	if err := h.ch.Send(ctx, chatID, text); err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

// sendChoices отправляет сообщение с клавиатурой вариантов
func (h *Handlers) sendChoices(ctx context.Context, chatID int64, text string, choices []string) {
	if err := h.ch.SendChoices(ctx, chatID, text, choices); err != nil {
		h.logger.Error("Failed to send choices",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

// sendHide отправляет сообщение и убирает клавиатуру вариантов
func (h *Handlers) sendHide(ctx context.Context, chatID int64, text string) {
	if err := h.ch.SendHideKeyboard(ctx, chatID, text); err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}
