package handlers

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// sendPrice отправляет прайс-лист
func (h *Handlers) sendPrice(ctx context.Context, chatID int64) {
	text := "<b>ПРАЙС-ЛИСТ</b>\n\n" +
		"▫️ Маникюр (без покрытия) — <b>800</b>\n" +
		"▫️ Маникюр + гель-лак — <b>1300</b>\n" +
		"▫️ Укрепление — <b>1600</b>\n" +
		"▫️ Наращивание ногтей — <b>от 1900</b>\n" +
		"▫️ Коррекция нарощенных — <b>от 1700</b>\n" +
		"▫️ Ремонт — <b>50</b>\n" +
		"▫️ Френч / втирка — <b>200</b>\n" +
		"▫️ Дизайн — <b>от 50</b>\n" +
		"▫️ Снятие материала (без покрытия) — <b>300</b>\n\n" +
		"🌷 Записывайтесь — и ваши ноготки будут идеальны! 💫"

	h.send(ctx, chatID, text)
	h.logger.Info("Sent price", zap.Int64("chat_id", chatID))
}

// sendExamples отправляет фотографии работ из каталога photosDir.
// Сбой отправки одного фото не прерывает остальные.
func (h *Handlers) sendExamples(ctx context.Context, chatID int64) {
	entries, err := os.ReadDir(h.photosDir)
	if err != nil {
		h.logger.Warn("Photos folder missing",
			zap.String("dir", h.photosDir),
			zap.Error(err))
		h.send(ctx, chatID, "Папка с примерами работ не найдена.")
		return
	}

	var photos []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".jpg", ".jpeg", ".png":
			photos = append(photos, filepath.Join(h.photosDir, e.Name()))
		}
	}

	if len(photos) == 0 {
		h.send(ctx, chatID, "Пока нет примеров работ.")
		return
	}

	h.send(ctx, chatID, "Примеры моих работ:")
	for _, p := range photos {
		if err := h.ch.SendPhotoFile(ctx, chatID, p); err != nil {
			h.logger.Error("Failed to send photo",
				zap.String("photo", p),
				zap.Error(err))
		}
	}
	h.logger.Info("Sent examples", zap.Int64("chat_id", chatID), zap.Int("count", len(photos)))
}
