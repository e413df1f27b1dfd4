package channel

import "context"

// Action кнопка действия, привязанная к callback-данным
type Action struct {
	Text string
	Data string
}

// Channel транспорт диалога. Ядро не знает про Telegram: обработчики
// работают только через этот интерфейс, ошибки доставки — ошибки
// конкретного вызова, не процесса.
type Channel interface {
	// Send отправляет текст, не трогая текущую клавиатуру
	Send(ctx context.Context, chatID int64, text string) error
	// SendChoices отправляет текст с клавиатурой вариантов (по одному в ряд)
	SendChoices(ctx context.Context, chatID int64, text string, choices []string) error
	// SendHideKeyboard отправляет текст и убирает клавиатуру вариантов
	SendHideKeyboard(ctx context.Context, chatID int64, text string) error
	// SendActions отправляет текст с inline-кнопками действий
	SendActions(ctx context.Context, chatID int64, text string, actions []Action) error
	// SendPhotoFile отправляет фото из файла
	SendPhotoFile(ctx context.Context, chatID int64, path string) error
	// SendImage отправляет PNG из памяти
	SendImage(ctx context.Context, chatID int64, caption string, png []byte) error
	// Notify шлёт уведомление (оповещение администратора о новой записи)
	Notify(ctx context.Context, chatID int64, text string) error
	// Answer подтверждает нажатие inline-кнопки
	Answer(ctx context.Context, callbackID string, text string, alert bool) error
}
