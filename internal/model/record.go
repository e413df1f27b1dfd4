package model

import "time"

// Record запись клиента на услугу
type Record struct {
	ID         int64     `json:"id"`
	Ref        string    `json:"ref"` // уникальный код подтверждения записи
	TelegramID int64     `json:"telegram_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Service    string    `json:"service"`
	Date       string    `json:"date"` // дд.мм.гггг
	Time       string    `json:"time"` // ЧЧ:ММ
	CreatedAt  time.Time `json:"created_at"`
}

// BusySlot занятый интервал дня: время начала и услуга (для вычисления длительности)
type BusySlot struct {
	Time    string `json:"time"`
	Service string `json:"service"`
}
