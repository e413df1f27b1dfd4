package handlers

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nailroom/booking-bot/internal/channel"
	"github.com/nailroom/booking-bot/internal/controller/state"
	"github.com/nailroom/booking-bot/internal/service"
)

// startAdmin открывает админскую навигацию: выбор года
func (h *Handlers) startAdmin(ctx context.Context, chatID int64) {
	if !h.isAdmin(chatID) {
		h.logger.Warn("Admin denied", zap.Int64("chat_id", chatID))
		h.send(ctx, chatID, "Нет доступа.")
		return
	}

	years, err := h.admin.Years(ctx)
	if err != nil {
		h.logger.Error("Failed to load years", zap.Error(err))
		h.send(ctx, chatID, "⚠️ Не получилось загрузить записи. Попробуйте позже.")
		return
	}

	if len(years) == 0 {
		h.send(ctx, chatID, "Записей нет.")
		return
	}

	h.states.Clear(chatID)
	h.states.Put(chatID, state.Session{Step: state.StepAdminYear})

	h.sendChoices(ctx, chatID, "Админка: выберите год", years)
	h.logger.Info("Admin panel opened", zap.Int64("chat_id", chatID), zap.Strings("years", years))
}

// stepAdminYear ждёт год и показывает месяцы с записями
func (h *Handlers) stepAdminYear(ctx context.Context, chatID int64, sess state.Session, text string) {
	if !h.isAdmin(chatID) {
		h.states.Clear(chatID)
		h.send(ctx, chatID, "Нет доступа.")
		return
	}

	year := strings.TrimSpace(text)

	months, err := h.admin.Months(ctx, year)
	if err != nil {
		h.logger.Error("Failed to load months", zap.String("year", year), zap.Error(err))
		h.states.Clear(chatID)
		h.send(ctx, chatID, "⚠️ Не получилось загрузить записи. Попробуйте позже.")
		return
	}

	if len(months) == 0 {
		h.states.Clear(chatID)
		h.sendHide(ctx, chatID, "На этот год записей нет.")
		return
	}

	sess.AdminYear = year
	sess.Step = state.StepAdminMonth
	h.states.Put(chatID, sess)

	h.sendChoices(ctx, chatID, fmt.Sprintf("Год %s. Выберите месяц", year), months)
}

// stepAdminMonth ждёт месяц и показывает дни с записями
func (h *Handlers) stepAdminMonth(ctx context.Context, chatID int64, sess state.Session, text string) {
	if !h.isAdmin(chatID) {
		h.states.Clear(chatID)
		h.send(ctx, chatID, "Нет доступа.")
		return
	}

	month := strings.TrimSpace(text)

	days, err := h.admin.Days(ctx, sess.AdminYear, month)
	if err != nil {
		h.logger.Error("Failed to load days",
			zap.String("year", sess.AdminYear),
			zap.String("month", month),
			zap.Error(err))
		h.states.Clear(chatID)
		h.send(ctx, chatID, "⚠️ Не получилось загрузить записи. Попробуйте позже.")
		return
	}

	if len(days) == 0 {
		h.states.Clear(chatID)
		h.sendHide(ctx, chatID, "На этот месяц записей нет.")
		return
	}

	sess.AdminMonth = month
	sess.Step = state.StepAdminDay
	h.states.Put(chatID, sess)

	h.sendChoices(ctx, chatID, fmt.Sprintf("%s.%s. Выберите день", month, sess.AdminYear), days)
}

// stepAdminDay ждёт день и показывает отчёт за дату с кнопками удаления
func (h *Handlers) stepAdminDay(ctx context.Context, chatID int64, sess state.Session, text string) {
	if !h.isAdmin(chatID) {
		h.states.Clear(chatID)
		h.send(ctx, chatID, "Нет доступа.")
		return
	}

	day := strings.TrimSpace(text)
	date := padDay(day) + "." + sess.AdminMonth + "." + sess.AdminYear

	// Просмотр дня — терминальный шаг навигации
	h.states.Clear(chatID)

	records, err := h.admin.DayRecords(ctx, date)
	if err != nil {
		h.logger.Error("Failed to load day records", zap.String("date", date), zap.Error(err))
		h.send(ctx, chatID, "⚠️ Не получилось загрузить записи. Попробуйте позже.")
		return
	}

	h.sendHide(ctx, chatID, service.FormatDayReport(records, date))
	h.logger.Info("Admin day view",
		zap.Int64("chat_id", chatID),
		zap.String("date", date),
		zap.Int("count", len(records)))

	if len(records) == 0 {
		return
	}

	png, err := service.RenderDayImage(records)
	if err != nil {
		h.logger.Error("Failed to render day image", zap.String("date", date), zap.Error(err))
	} else if err := h.ch.SendImage(ctx, chatID, "📊 Схема дня "+date, png); err != nil {
		h.logger.Error("Failed to send day image", zap.Int64("chat_id", chatID), zap.Error(err))
	}

	actions := make([]channel.Action, 0, len(records))
	for _, r := range records {
		actions = append(actions, channel.Action{
			Text: fmt.Sprintf("Удалить %s — %s", r.Time, r.Name),
			Data: fmt.Sprintf("del_%d", r.ID),
		})
	}

	if err := h.ch.SendActions(ctx, chatID, "Удаление записей:", actions); err != nil {
		h.logger.Error("Failed to send delete actions", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// padDay дополняет день до двух цифр для ключа даты дд.мм.гггг
func padDay(day string) string {
	if len(day) == 1 {
		return "0" + day
	}
	return day
}
