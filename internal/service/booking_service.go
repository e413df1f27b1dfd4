package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nailroom/booking-bot/internal/catalog"
	"github.com/nailroom/booking-bot/internal/model"
)

// BookingService считает доступные слоты и фиксирует записи в хранилище
type BookingService struct {
	ledger Ledger
	logger *zap.Logger
}

func NewBookingService(ledger Ledger, logger *zap.Logger) *BookingService {
	return &BookingService{
		ledger: ledger,
		logger: logger,
	}
}

// SlotsForDate возвращает свободные времена начала для услуги на дату.
// Между этим вызовом и Commit другой пользователь может занять слот —
// источником истины остаётся вставка в хранилище.
func (s *BookingService) SlotsForDate(ctx context.Context, date, serviceName string) ([]string, error) {
	busy, err := s.ledger.SlotsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load busy slots: %w", err)
	}

	return AvailableSlots(busy, catalog.Duration(serviceName)), nil
}

// Commit сохраняет подтверждённую запись, присваивая код подтверждения.
// Новая запись обязана ссылаться на услугу из каталога.
func (s *BookingService) Commit(ctx context.Context, rec *model.Record) error {
	if !catalog.Exists(rec.Service) {
		return fmt.Errorf("unknown service %q", rec.Service)
	}

	rec.Ref = uuid.NewString()

	if _, err := s.ledger.Insert(ctx, rec); err != nil {
		return fmt.Errorf("commit record: %w", err)
	}

	s.logger.Info("Record committed",
		zap.Int64("id", rec.ID),
		zap.String("ref", rec.Ref),
		zap.Int64("telegram_id", rec.TelegramID),
		zap.String("service", rec.Service),
		zap.String("date", rec.Date),
		zap.String("time", rec.Time))

	return nil
}
