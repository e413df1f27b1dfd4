package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nailroom/booking-bot/internal/model"
)

// AdminService навигация администратора по записям: год → месяц → день,
// отчёт за день и удаление записей
type AdminService struct {
	ledger Ledger
	logger *zap.Logger
}

func NewAdminService(ledger Ledger, logger *zap.Logger) *AdminService {
	return &AdminService{
		ledger: ledger,
		logger: logger,
	}
}

// Years возвращает годы, за которые есть хотя бы одна запись
func (s *AdminService) Years(ctx context.Context) ([]string, error) {
	years, err := s.ledger.Years(ctx)
	if err != nil {
		return nil, fmt.Errorf("years: %w", err)
	}
	return years, nil
}

// Months возвращает месяцы года с записями
func (s *AdminService) Months(ctx context.Context, year string) ([]string, error) {
	months, err := s.ledger.Months(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("months for %s: %w", year, err)
	}
	return months, nil
}

// Days возвращает дни месяца с записями
func (s *AdminService) Days(ctx context.Context, year, month string) ([]string, error) {
	days, err := s.ledger.Days(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("days for %s.%s: %w", month, year, err)
	}
	return days, nil
}

// DayRecords возвращает записи на дату по возрастанию времени
func (s *AdminService) DayRecords(ctx context.Context, date string) ([]model.Record, error) {
	records, err := s.ledger.DetailedByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("day records for %s: %w", date, err)
	}
	return records, nil
}

// Delete удаляет запись по ID. Отсутствующий ID — не сбой:
// возвращается ErrRecordNotFound, и повторное удаление даёт тот же ответ.
func (s *AdminService) Delete(ctx context.Context, id int64) error {
	err := s.ledger.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("delete record %d: %w", id, err)
	}

	s.logger.Info("Record deleted", zap.Int64("id", id))
	return nil
}
