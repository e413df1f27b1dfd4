package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nailroom/booking-bot/internal/catalog"
	"github.com/nailroom/booking-bot/internal/model"
)

// Рабочее окно: ежедневно 12:00-19:00, шаг слота 30 минут
const (
	workOpenMinutes  = 12 * 60
	workCloseMinutes = 19 * 60
	slotStepMinutes  = 30
)

type busyRange struct {
	start, end int // минуты от полуночи, полуоткрытый интервал [start, end)
}

// AvailableSlots возвращает свободные времена начала для услуги заданной
// длительности с учётом занятых интервалов дня. Чистая функция: одинаковый
// вход даёт одинаковый результат. Пустой список — нормальный исход.
//
// Кандидат принимается если услуга помещается до закрытия и не пересекается
// ни с одним занятым интервалом. Интервалы полуоткрытые, так что записи
// впритык друг к другу разрешены.
func AvailableSlots(busy []model.BusySlot, durationHours float64) []string {
	need := minutesFromHours(durationHours)

	ranges := make([]busyRange, 0, len(busy))
	for _, b := range busy {
		start, ok := minutesOfDay(b.Time)
		if !ok {
			continue
		}
		d := minutesFromHours(catalog.Duration(b.Service))
		ranges = append(ranges, busyRange{start: start, end: start + d})
	}

	var slots []string
	for cur := workOpenMinutes; cur+need <= workCloseMinutes; cur += slotStepMinutes {
		free := true
		for _, r := range ranges {
			if !(cur+need <= r.start || cur >= r.end) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, formatMinutes(cur))
		}
	}
	return slots
}

func minutesFromHours(hours float64) int {
	return int(hours*60 + 0.5)
}

// minutesOfDay разбирает "ЧЧ:ММ" в минуты от полуночи
func minutesOfDay(t string) (int, bool) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
