package service

import (
	"context"
	"errors"

	"github.com/nailroom/booking-bot/internal/model"
)

// ErrRecordNotFound запись с таким ID отсутствует в хранилище
var ErrRecordNotFound = errors.New("record not found")

// Ledger хранилище подтверждённых записей. Все списки возвращаются по
// возрастанию естественного текстового порядка поля.
type Ledger interface {
	// Insert сохраняет запись и возвращает присвоенный ID
	Insert(ctx context.Context, rec *model.Record) (int64, error)
	// Delete удаляет запись; для отсутствующего ID возвращает ErrRecordNotFound
	Delete(ctx context.Context, id int64) error
	// SlotsByDate возвращает занятые интервалы дня (время + услуга)
	SlotsByDate(ctx context.Context, date string) ([]model.BusySlot, error)
	// DetailedByDate возвращает полные записи дня по возрастанию времени
	DetailedByDate(ctx context.Context, date string) ([]model.Record, error)
	// Years возвращает годы, за которые есть записи
	Years(ctx context.Context) ([]string, error)
	// Months возвращает месяцы года, за которые есть записи
	Months(ctx context.Context, year string) ([]string, error)
	// Days возвращает дни месяца, за которые есть записи
	Days(ctx context.Context, year, month string) ([]string, error)
}
