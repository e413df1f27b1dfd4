package handlers

import (
	"context"
	"sort"
	"sync"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/nailroom/booking-bot/internal/channel"
	"github.com/nailroom/booking-bot/internal/controller/state"
	"github.com/nailroom/booking-bot/internal/model"
	"github.com/nailroom/booking-bot/internal/service"
)

// fakeChannel записывает все отправки вместо реальной доставки
type fakeChannel struct {
	mu         sync.Mutex
	sent       []sentMessage
	failNotify map[int64]bool
}

type sentMessage struct {
	kind    string
	chatID  int64
	text    string
	choices []string
	actions []channel.Action
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{failNotify: make(map[int64]bool)}
}

func (f *fakeChannel) record(m sentMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, m)
}

func (f *fakeChannel) Send(_ context.Context, chatID int64, text string) error {
	f.record(sentMessage{kind: "send", chatID: chatID, text: text})
	return nil
}

func (f *fakeChannel) SendChoices(_ context.Context, chatID int64, text string, choices []string) error {
	f.record(sentMessage{kind: "choices", chatID: chatID, text: text, choices: choices})
	return nil
}

func (f *fakeChannel) SendHideKeyboard(_ context.Context, chatID int64, text string) error {
	f.record(sentMessage{kind: "hide", chatID: chatID, text: text})
	return nil
}

func (f *fakeChannel) SendActions(_ context.Context, chatID int64, text string, actions []channel.Action) error {
	f.record(sentMessage{kind: "actions", chatID: chatID, text: text, actions: actions})
	return nil
}

func (f *fakeChannel) SendPhotoFile(_ context.Context, chatID int64, path string) error {
	f.record(sentMessage{kind: "photo", chatID: chatID, text: path})
	return nil
}

func (f *fakeChannel) SendImage(_ context.Context, chatID int64, caption string, _ []byte) error {
	f.record(sentMessage{kind: "image", chatID: chatID, text: caption})
	return nil
}

func (f *fakeChannel) Notify(_ context.Context, chatID int64, text string) error {
	if f.failNotify[chatID] {
		return context.DeadlineExceeded
	}
	f.record(sentMessage{kind: "notify", chatID: chatID, text: text})
	return nil
}

func (f *fakeChannel) Answer(_ context.Context, callbackID string, text string, _ bool) error {
	f.record(sentMessage{kind: "answer", text: text})
	return nil
}

// last возвращает последнее отправленное сообщение указанного вида
func (f *fakeChannel) last(kind string) (sentMessage, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.sent) - 1; i >= 0; i-- {
		if f.sent[i].kind == kind {
			return f.sent[i], true
		}
	}
	return sentMessage{}, false
}

func (f *fakeChannel) notified() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []int64
	for _, m := range f.sent {
		if m.kind == "notify" {
			out = append(out, m.chatID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// fakeLedger хранилище в памяти для тестов диалогов
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
		return service.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeLedger) SlotsByDate(_ context.Context, date string) ([]model.BusySlot, error) {
	var out []model.BusySlot
	for _, r := range f.byDate(date) {
		out = append(out, model.BusySlot{Time: r.Time, Service: r.Service})
	}
	return out, nil
}

func (f *fakeLedger) DetailedByDate(_ context.Context, date string) ([]model.Record, error) {
	return f.byDate(date), nil
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

func (f *fakeLedger) byDate(date string) []model.Record {
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

const (
	clientID = int64(1)
	adminID  = int64(900)
)

// newTestHandlers собирает Handlers с фейковым транспортом и хранилищем
func newTestHandlers(ch *fakeChannel, ledger *fakeLedger, admins ...int64) *Handlers {
	if len(admins) == 0 {
		admins = []int64{adminID}
	}
	logger := zap.NewNop()
	return NewHandlers(
		ch,
		service.NewBookingService(ledger, logger),
		service.NewAdminService(ledger, logger),
		state.NewManager(),
		admins,
		"photos",
		logger,
	)
}

func msg(chatID int64, text string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			Text: text,
			Chat: models.Chat{ID: chatID},
			From: &models.User{ID: chatID},
		},
	}
}

func callback(fromID int64, data string) *models.Update {
	return &models.Update{
		CallbackQuery: &models.CallbackQuery{
			ID:   "cb",
			From: models.User{ID: fromID},
			Data: data,
			Message: models.MaybeInaccessibleMessage{
				Message: &models.Message{Chat: models.Chat{ID: fromID}},
			},
		},
	}
}
