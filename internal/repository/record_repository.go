package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nailroom/booking-bot/internal/model"
	"github.com/nailroom/booking-bot/internal/repository/base"
	"github.com/nailroom/booking-bot/internal/service"
)

// RecordRepository хранилище записей поверх PostgreSQL.
// Дата хранится текстом в формате дд.мм.гггг — выборки год/месяц/день
// считаются по фиксированным смещениям substr, как в исходной схеме.
type RecordRepository struct {
	*base.Repository
}

func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{Repository: base.NewRepository(pool)}
}

// Insert сохраняет запись и возвращает присвоенный ID
func (r *RecordRepository) Insert(ctx context.Context, rec *model.Record) (int64, error) {
	query := `
		INSERT INTO records (ref, telegram_id, name, phone, service, date, time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		rec.Ref,
		rec.TelegramID,
		rec.Name,
		rec.Phone,
		rec.Service,
		rec.Date,
		rec.Time,
	).Scan(&rec.ID, &rec.CreatedAt)

	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	return rec.ID, nil
}

// Delete удаляет запись по ID
func (r *RecordRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.ExecAffected(ctx, `DELETE FROM records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	if affected == 0 {
		return service.ErrRecordNotFound
	}

	return nil
}

// SlotsByDate возвращает занятые интервалы дня по возрастанию времени
func (r *RecordRepository) SlotsByDate(ctx context.Context, date string) ([]model.BusySlot, error) {
	query := `
		SELECT time, service
		FROM records
		WHERE date = $1
		ORDER BY time ASC
	`

	rows, err := r.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("slots by date: %w", err)
	}
	defer rows.Close()

	var slots []model.BusySlot
	for rows.Next() {
		var s model.BusySlot
		if err := rows.Scan(&s.Time, &s.Service); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, s)
	}

	return slots, rows.Err()
}

// DetailedByDate возвращает полные записи дня по возрастанию времени
func (r *RecordRepository) DetailedByDate(ctx context.Context, date string) ([]model.Record, error) {
	query := `
		SELECT id, ref, telegram_id, name, phone, service, date, time, created_at
		FROM records
		WHERE date = $1
		ORDER BY time ASC
	`

	rows, err := r.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("records by date: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var rec model.Record
		err := rows.Scan(
			&rec.ID,
			&rec.Ref,
			&rec.TelegramID,
			&rec.Name,
			&rec.Phone,
			&rec.Service,
			&rec.Date,
			&rec.Time,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Years возвращает годы, за которые есть записи
func (r *RecordRepository) Years(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT substr(date, 7, 4) AS y
		FROM records
		ORDER BY y
	`

	years, err := r.QueryStrings(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct years: %w", err)
	}
	return years, nil
}

// Months возвращает месяцы указанного года, за которые есть записи
func (r *RecordRepository) Months(ctx context.Context, year string) ([]string, error) {
	query := `
		SELECT DISTINCT substr(date, 4, 2) AS m
		FROM records
		WHERE substr(date, 7, 4) = $1
		ORDER BY m
	`

	months, err := r.QueryStrings(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("distinct months: %w", err)
	}
	return months, nil
}

// Days возвращает дни месяца, за которые есть записи
func (r *RecordRepository) Days(ctx context.Context, year, month string) ([]string, error) {
	query := `
		SELECT DISTINCT substr(date, 1, 2) AS d
		FROM records
		WHERE substr(date, 7, 4) = $1 AND substr(date, 4, 2) = $2
		ORDER BY d
	`

	days, err := r.QueryStrings(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("distinct days: %w", err)
	}
	return days, nil
}
