package service

import (
	"strconv"
	"strings"

	"github.com/nailroom/booking-bot/internal/model"
)

var (
	reportHeaders = []string{"ID", "Время", "Имя", "Телефон", "Услуга"}
	reportWidths  = []int{6, 7, 16, 14, 32}
)

// FormatDayReport строит таблицу записей дня фиксированной ширины,
// обёрнутую в <pre> для моноширинного показа. Если записей нет,
// выводится строка-заглушка.
func FormatDayReport(records []model.Record, date string) string {
	line := reportLine()

	var parts []string
	parts = append(parts, "Записи на "+date)
	parts = append(parts, line)
	parts = append(parts, reportRow(reportHeaders))
	parts = append(parts, line)

	if len(records) == 0 {
		placeholder := make([]string, len(reportWidths))
		for i := range placeholder {
			placeholder[i] = "-"
		}
		parts = append(parts, reportRow(placeholder))
	} else {
		for _, r := range records {
			parts = append(parts, reportRow([]string{
				strconv.FormatInt(r.ID, 10),
				r.Time,
				r.Name,
				r.Phone,
				r.Service,
			}))
		}
	}
	parts = append(parts, line)

	return "<pre>" + strings.Join(parts, "\n") + "</pre>"
}

func reportLine() string {
	segs := make([]string, len(reportWidths))
	for i, w := range reportWidths {
		segs[i] = strings.Repeat("-", w+2)
	}
	return strings.Join(segs, "+")
}

func reportRow(cells []string) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = padRight(cut(c, reportWidths[i]), reportWidths[i])
	}
	return "| " + strings.Join(out, " | ") + " |"
}

// cut обрезает значение до ширины колонки, помечая обрез многоточием.
// Ширина считается в рунах, иначе кириллица ломает сетку.
func cut(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func padRight(s string, width int) string {
	n := width - len([]rune(s))
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
