package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nailroom/booking-bot/internal/model"
)

// fakeLedger хранилище в памяти для тестов сервисов
type fakeLedger struct {
	nextID    int64
	records   map[int64]model.Record
	insertErr error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{records: make(map[int64]model.Record)}
}

func (f *fakeLedger) Insert(_ context.Context, rec *model.Record) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.nextID++
	rec.ID = f.nextID
	f.records[rec.ID] = *rec
	return rec.ID, nil
}

func (f *fakeLedger) Delete(_ context.Context, id int64) error {
	if _, ok := f.records[id]; !ok {
		return ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeLedger) SlotsByDate(_ context.Context, date string) ([]model.BusySlot, error) {
	var out []model.BusySlot
	for _, r := range f.sortedByTime(date) {
		out = append(out, model.BusySlot{Time: r.Time, Service: r.Service})
	}
	return out, nil
}

func (f *fakeLedger) DetailedByDate(_ context.Context, date string) ([]model.Record, error) {
	return f.sortedByTime(date), nil
}

func (f *fakeLedger) Years(_ context.Context) ([]string, error) {
	return f.distinct(func(r model.Record) string { return r.Date[6:10] }, func(model.Record) bool { return true }), nil
}

func (f *fakeLedger) Months(_ context.Context, year string) ([]string, error) {
	return f.distinct(
		func(r model.Record) string { return r.Date[3:5] },
		func(r model.Record) bool { return r.Date[6:10] == year },
	), nil
}

func (f *fakeLedger) Days(_ context.Context, year, month string) ([]string, error) {
	return f.distinct(
		func(r model.Record) string { return r.Date[0:2] },
		func(r model.Record) bool { return r.Date[6:10] == year && r.Date[3:5] == month },
	), nil
}

func (f *fakeLedger) sortedByTime(date string) []model.Record {
	var out []model.Record
	for _, r := range f.records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

func (f *fakeLedger) distinct(key func(model.Record) string, match func(model.Record) bool) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range f.records {
		if !match(r) {
			continue
		}
		k := key(r)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func TestCommitRoundTrip(t *testing.T) {
	ledger := newFakeLedger()
	svc := NewBookingService(ledger, zap.NewNop())

	rec := model.Record{
		TelegramID: 42,
		Name:       "Анна",
		Phone:      "+380991234567",
		Service:    "Маникюр + гель-лак",
		Date:       "05.06.2025",
		Time:       "12:00",
	}

	require.NoError(t, svc.Commit(context.Background(), &rec))
	assert.NotZero(t, rec.ID)
	assert.NotEmpty(t, rec.Ref)

	// Запись появляется в занятых слотах даты ровно один раз
	busy, err := ledger.SlotsByDate(context.Background(), "05.06.2025")
	require.NoError(t, err)
	require.Len(t, busy, 1)
	assert.Equal(t, "12:00", busy[0].Time)
	assert.Equal(t, "Маникюр + гель-лак", busy[0].Service)
}

func TestCommitUnknownService(t *testing.T) {
	ledger := newFakeLedger()
	svc := NewBookingService(ledger, zap.NewNop())

	rec := model.Record{
		TelegramID: 42,
		Service:    "Стрижка",
		Date:       "05.06.2025",
		Time:       "12:00",
	}

	require.Error(t, svc.Commit(context.Background(), &rec))
	assert.Empty(t, ledger.records)
}

func TestCommitInsertFailure(t *testing.T) {
	ledger := newFakeLedger()
	ledger.insertErr = errors.New("connection lost")
	svc := NewBookingService(ledger, zap.NewNop())

	rec := model.Record{
		TelegramID: 42,
		Service:    "Маникюр + гель-лак",
		Date:       "05.06.2025",
		Time:       "12:00",
	}

	err := svc.Commit(context.Background(), &rec)
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection lost")
}

func TestSlotsForDateRespectsExisting(t *testing.T) {
	ledger := newFakeLedger()
	svc := NewBookingService(ledger, zap.NewNop())

	busy := model.Record{
		TelegramID: 1,
		Name:       "Оля",
		Phone:      "+380991112233",
		Service:    "Маникюр + укрепление", // 2.0ч → 12:00-14:00
		Date:       "05.06.2025",
		Time:       "12:00",
	}
	require.NoError(t, svc.Commit(context.Background(), &busy))

	slots, err := svc.SlotsForDate(context.Background(), "05.06.2025", "Маникюр + укрепление")
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "14:00", slots[0])
	assert.Equal(t, "17:00", slots[len(slots)-1])
}
