package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nailroom/booking-bot/internal/catalog"
	"github.com/nailroom/booking-bot/internal/controller/state"
	"github.com/nailroom/booking-bot/internal/model"
	"github.com/nailroom/booking-bot/internal/service"
)

// startBooking начинает запись заново. Незавершённый диалог (в том числе
// админский) при этом сбрасывается без слияния полей.
func (h *Handlers) startBooking(ctx context.Context, chatID int64) {
	h.states.Clear(chatID)
	h.states.Put(chatID, state.Session{Step: state.StepService})

	h.sendChoices(ctx, chatID, "Выберите услугу 💅:", catalog.Names())
	h.logger.Info("Signup started", zap.Int64("chat_id", chatID))
}

// stepService ждёт выбор услуги из каталога
func (h *Handlers) stepService(ctx context.Context, chatID int64, sess state.Session, text string) {
	if !catalog.Exists(text) {
		h.logger.Warn("Invalid service", zap.Int64("chat_id", chatID), zap.String("text", text))
		h.sendChoices(ctx, chatID, "Пожалуйста, выберите услугу с клавиатуры 💅:", catalog.Names())
		return
	}

	sess.Service = text
	sess.Step = state.StepName
	h.states.Put(chatID, sess)

	h.sendHide(ctx, chatID, "Введите ваше имя:")
	h.logger.Info("Service selected", zap.Int64("chat_id", chatID), zap.String("service", text))
}

// stepName ждёт корректное имя
func (h *Handlers) stepName(ctx context.Context, chatID int64, sess state.Session, text string) {
	name := strings.TrimSpace(text)
	if !service.ValidName(name) {
		h.logger.Warn("Invalid name", zap.Int64("chat_id", chatID))
		h.send(ctx, chatID, "Некорректное имя: 2-50 букв, допустимы дефис и пробел. Пример: Анна-Мария")
		return
	}

	sess.Name = name
	sess.Step = state.StepPhone
	h.states.Put(chatID, sess)

	h.send(ctx, chatID, "Введите номер телефона. Пример: +38 099 123-45-67")
	h.logger.Info("Name entered", zap.Int64("chat_id", chatID))
}

// stepPhone ждёт корректный номер телефона
func (h *Handlers) stepPhone(ctx context.Context, chatID int64, sess state.Session, text string) {
	phone, ok := service.NormalizePhone(text)
	if !ok {
		h.logger.Warn("Invalid phone", zap.Int64("chat_id", chatID))
		h.send(ctx, chatID, "Некорректный номер. Пример: +38 099 123-45-67")
		return
	}

	sess.Phone = phone
	sess.Step = state.StepDate
	h.states.Put(chatID, sess)

	h.send(ctx, chatID, "Введите дату в формате дд.мм.гггг")
	h.logger.Info("Phone entered", zap.Int64("chat_id", chatID))
}

// stepDate ждёт корректную дату и показывает свободные слоты.
// Если на день свободного времени нет, остаёмся на шаге даты.
func (h *Handlers) stepDate(ctx context.Context, chatID int64, sess state.Session, text string) {
	d, ok := service.ParseDate(text, time.Now())
	if !ok {
		h.logger.Warn("Invalid date", zap.Int64("chat_id", chatID), zap.String("text", text))
		h.send(ctx, chatID, "Неверная дата или дата в прошлом. Формат: дд.мм.гггг")
		return
	}

	dateStr := d.Format(service.DateLayout)

	slots, err := h.booking.SlotsForDate(ctx, dateStr, sess.Service)
	if err != nil {
		h.logger.Error("Failed to compute slots",
			zap.Int64("chat_id", chatID),
			zap.String("date", dateStr),
			zap.Error(err))
		h.send(ctx, chatID, "⚠️ Не получилось проверить свободное время. Введите дату ещё раз.")
		return
	}

	if len(slots) == 0 {
		h.logger.Info("No slots for date", zap.Int64("chat_id", chatID), zap.String("date", dateStr))
		h.send(ctx, chatID, "На этот день нет свободных слотов. Введите другую дату.")
		return
	}

	sess.Date = dateStr
	sess.Slots = slots
	sess.Step = state.StepTime
	h.states.Put(chatID, sess)

	h.sendChoices(ctx, chatID, "Выберите время:", slots)
	h.logger.Info("Date selected",
		zap.Int64("chat_id", chatID),
		zap.String("date", dateStr),
		zap.Int("slots", len(slots)))
}

// stepTime ждёт время из предложенного списка и фиксирует запись
func (h *Handlers) stepTime(ctx context.Context, chatID int64, sess state.Session, text string) {
	t := strings.TrimSpace(text)
	if !service.ValidTimeToken(t) {
		h.logger.Warn("Invalid time", zap.Int64("chat_id", chatID), zap.String("text", text))
		h.send(ctx, chatID, "Некорректное время. Выберите время с клавиатуры.")
		return
	}

	offered := false
	for _, s := range sess.Slots {
		if s == t {
			offered = true
			break
		}
	}
	if !offered {
		h.logger.Warn("Time not in offered slots", zap.Int64("chat_id", chatID), zap.String("time", t))
		h.send(ctx, chatID, "Это время недоступно. Выберите время с клавиатуры.")
		return
	}

	rec := model.Record{
		TelegramID: chatID,
		Name:       sess.Name,
		Phone:      sess.Phone,
		Service:    sess.Service,
		Date:       sess.Date,
		Time:       t,
	}

	// Сессия очищается в любом исходе: повторная отправка того же
	// черновика после сбоя запрещена, клиент начинает запись заново
	h.states.Clear(chatID)

	if err := h.booking.Commit(ctx, &rec); err != nil {
		h.logger.Error("Failed to save record", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendHide(ctx, chatID, "Ошибка сохранения. Попробуйте записаться ещё раз: /sign_up")
		return
	}

	h.sendHide(ctx, chatID, fmt.Sprintf(
		"<b>Запись подтверждена!</b>\n\n"+
			"💅 Услуга: <b>%s</b>\n"+
			"👩 Имя: <b>%s</b>\n"+
			"📞 Телефон: <b>%s</b>\n"+
			"📅 Дата: <b>%s</b>\n"+
			"⏰ Время: <b>%s</b>\n"+
			"🔖 Код записи: <code>%s</code>",
		rec.Service, rec.Name, rec.Phone, rec.Date, rec.Time, rec.Ref))

	h.notifyAdmins(ctx, &rec)
}

// notifyAdmins оповещает администраторов о новой записи.
// Сбой доставки одному администратору не мешает остальным.
func (h *Handlers) notifyAdmins(ctx context.Context, rec *model.Record) {
	text := fmt.Sprintf(
		"<b>Новая запись</b>\n\n"+
			"💅 %s\n"+
			"👩 %s | 📞 %s\n"+
			"📅 %s в %s\n"+
			"🔖 <code>%s</code>",
		rec.Service, rec.Name, rec.Phone, rec.Date, rec.Time, rec.Ref)

	for _, adminID := range h.admins {
		if err := h.ch.Notify(ctx, adminID, text); err != nil {
			h.logger.Error("Failed to notify admin",
				zap.Int64("admin_id", adminID),
				zap.Error(err))
			continue
		}
		h.logger.Info("Admin notified", zap.Int64("admin_id", adminID))
	}
}
