package channel

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Telegram реализация Channel поверх go-telegram/bot.
// Все сообщения отправляются с ParseMode HTML.
type Telegram struct {
	bot *bot.Bot
}

func NewTelegram(b *bot.Bot) *Telegram {
	return &Telegram{bot: b}
}

func (t *Telegram) Send(ctx context.Context, chatID int64, text string) error {
	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	return err
}

func (t *Telegram) SendChoices(ctx context.Context, chatID int64, text string, choices []string) error {
	rows := make([][]models.KeyboardButton, 0, len(choices))
	for _, c := range choices {
		rows = append(rows, []models.KeyboardButton{{Text: c}})
	}

	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
		ReplyMarkup: &models.ReplyKeyboardMarkup{
			Keyboard:       rows,
			ResizeKeyboard: true,
		},
	})
	return err
}

func (t *Telegram) SendHideKeyboard(ctx context.Context, chatID int64, text string) error {
	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
		ReplyMarkup: &models.ReplyKeyboardRemove{
			RemoveKeyboard: true,
		},
	})
	return err
}

func (t *Telegram) SendActions(ctx context.Context, chatID int64, text string, actions []Action) error {
	rows := make([][]models.InlineKeyboardButton, 0, len(actions))
	for _, a := range actions {
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: a.Text, CallbackData: a.Data},
		})
	}

	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
		ReplyMarkup: &models.InlineKeyboardMarkup{
			InlineKeyboard: rows,
		},
	})
	return err
}

func (t *Telegram) SendPhotoFile(ctx context.Context, chatID int64, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	_, err = t.bot.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID: chatID,
		Photo:  &models.InputFileUpload{Filename: filepath.Base(path), Data: f},
	})
	return err
}

func (t *Telegram) SendImage(ctx context.Context, chatID int64, caption string, png []byte) error {
	_, err := t.bot.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileUpload{Filename: "day.png", Data: bytes.NewReader(png)},
		Caption: caption,
	})
	return err
}

func (t *Telegram) Notify(ctx context.Context, chatID int64, text string) error {
	return t.Send(ctx, chatID, text)
}

func (t *Telegram) Answer(ctx context.Context, callbackID string, text string, alert bool) error {
	_, err := t.bot.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       alert,
	})
	return err
}
