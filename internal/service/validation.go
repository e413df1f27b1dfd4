package service

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout формат даты, в котором записи хранятся и показываются
const DateLayout = "02.01.2006"

var (
	nameRe      = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё\-\s]{2,50}$`)
	phoneJunkRe = regexp.MustCompile(`[^\d+]`)
	phoneRe     = regexp.MustCompile(`^(\+38|38)\d{10}$`)
	dateRe      = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
	timeRe      = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ValidName проверяет имя клиента: 2-50 символов, буквы (латиница или
// кириллица), дефис и пробел
func ValidName(text string) bool {
	return nameRe.MatchString(strings.TrimSpace(text))
}

// NormalizePhone убирает из номера всё кроме цифр и ведущего плюса и
// проверяет украинский мобильный формат. Возвращает нормализованный номер.
func NormalizePhone(text string) (string, bool) {
	digits := phoneJunkRe.ReplaceAllString(text, "")
	if !phoneRe.MatchString(digits) {
		return "", false
	}
	return digits, true
}

// ParseDate разбирает строгий формат дд.мм.гггг. Дата в прошлом или
// некорректная календарная дата (31.02) считается невалидной.
func ParseDate(text string, now time.Time) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if !dateRe.MatchString(text) {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, text)
	if err != nil {
		return time.Time{}, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		return time.Time{}, false
	}
	return d, true
}

// ValidTimeToken проверяет только синтаксис ЧЧ:ММ.
// Попадание в свободный слот проверяется отдельно по списку слотов.
func ValidTimeToken(text string) bool {
	return timeRe.MatchString(strings.TrimSpace(text))
}
