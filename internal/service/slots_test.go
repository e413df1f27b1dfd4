package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nailroom/booking-bot/internal/model"
)

func TestAvailableSlotsEmptyDay(t *testing.T) {
	slots := AvailableSlots(nil, 1.5)

	// 12:00-19:00, услуга 1.5ч: последний подходящий старт 17:30
	require.Len(t, slots, 12)
	assert.Equal(t, "12:00", slots[0])
	assert.Equal(t, "17:30", slots[len(slots)-1])
}

func TestAvailableSlotsSpacing(t *testing.T) {
	slots := AvailableSlots(nil, 0.5)

	require.NotEmpty(t, slots)
	assert.Equal(t, "12:00", slots[0])
	assert.Equal(t, "18:30", slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		prev, ok := minutesOfDay(slots[i-1])
		require.True(t, ok)
		cur, ok := minutesOfDay(slots[i])
		require.True(t, ok)
		assert.Equal(t, 30, cur-prev, "slots must step in 30-minute increments")
	}
}

func TestAvailableSlotsLongService(t *testing.T) {
	// 3 часа: последний старт 16:00
	slots := AvailableSlots(nil, 3.0)

	require.NotEmpty(t, slots)
	assert.Equal(t, "16:00", slots[len(slots)-1])
}

func TestAvailableSlotsAroundBusyInterval(t *testing.T) {
	busy := []model.BusySlot{
		{Time: "12:00", Service: "Маникюр + укрепление"}, // 2.0ч → занято 12:00-14:00
	}

	slots := AvailableSlots(busy, 2.0)

	// Первый свободный старт для двухчасовой услуги — ровно 14:00 (впритык)
	require.NotEmpty(t, slots)
	assert.Equal(t, "14:00", slots[0])
	assert.Equal(t, "17:00", slots[len(slots)-1])
	assert.NotContains(t, slots, "13:30")
	assert.NotContains(t, slots, "12:00")
}

func TestAvailableSlotsBackToBack(t *testing.T) {
	busy := []model.BusySlot{
		{Time: "14:00", Service: "Маникюр + гель-лак"}, // 1.5ч → 14:00-15:30
	}

	slots := AvailableSlots(busy, 1.5)

	// Запись, заканчивающаяся ровно в начале занятого интервала, разрешена
	assert.Contains(t, slots, "12:30")
	// И запись сразу после конца занятого интервала тоже
	assert.Contains(t, slots, "15:30")
	assert.NotContains(t, slots, "13:00")
	assert.NotContains(t, slots, "14:00")
	assert.NotContains(t, slots, "15:00")
}

func TestAvailableSlotsUnknownServiceFallback(t *testing.T) {
	// Услуга не из каталога считается полуторачасовой
	busy := []model.BusySlot{
		{Time: "12:00", Service: "Снятая с прайса услуга"},
	}

	slots := AvailableSlots(busy, 0.5)

	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "13:00")
	assert.Contains(t, slots, "13:30")
}

func TestAvailableSlotsFullDay(t *testing.T) {
	busy := []model.BusySlot{
		{Time: "12:00", Service: "Наращивание (длинные)"}, // 3ч
		{Time: "15:00", Service: "Маникюр + укрепление"},  // 2ч
		{Time: "17:00", Service: "Маникюр + укрепление"},  // 2ч
	}

	slots := AvailableSlots(busy, 1.0)
	assert.Empty(t, slots)
}

func TestAvailableSlotsPreserveNonOverlap(t *testing.T) {
	busy := []model.BusySlot{
		{Time: "13:00", Service: "Маникюр + гель-лак"},      // 13:00-14:30
		{Time: "16:30", Service: "Френч (как доп. к услуге)"}, // 16:30-17:00
	}
	const duration = 1.0

	slots := AvailableSlots(busy, duration)
	require.NotEmpty(t, slots)

	// Любой предложенный слот, будучи занятым, не пересекает существующие
	for _, s := range slots {
		start, ok := minutesOfDay(s)
		require.True(t, ok)
		end := start + minutesFromHours(duration)

		assert.GreaterOrEqual(t, start, workOpenMinutes)
		assert.LessOrEqual(t, end, workCloseMinutes)

		for _, b := range busy {
			bs, ok := minutesOfDay(b.Time)
			require.True(t, ok)
			be := bs + minutesFromHours(1.5)
			if b.Service == "Френч (как доп. к услуге)" {
				be = bs + minutesFromHours(0.5)
			}
			assert.True(t, end <= bs || start >= be,
				"slot %s overlaps busy interval starting at %s", s, b.Time)
		}
	}
}

func TestAvailableSlotsDeterministic(t *testing.T) {
	busy := []model.BusySlot{
		{Time: "13:30", Service: "Маникюр + гель-лак"},
	}

	first := AvailableSlots(busy, 2.0)
	second := AvailableSlots(busy, 2.0)
	assert.Equal(t, first, second)
}
