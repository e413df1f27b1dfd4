package state

import (
	"sync"
)

// Manager управляет сессиями пользователей.
//
// Помимо защиты самой map, Manager выдаёт пер-пользовательскую блокировку:
// два почти одновременных сообщения от одного пользователя обрабатываются
// строго по очереди и не могут перемешать поля сессии. Пользователи между
// собой не упорядочиваются.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
	locks    map[int64]*sync.Mutex
}

// NewManager создаёт новый менеджер сессий
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// Acquire захватывает обработку сообщений пользователя.
// Возвращает функцию освобождения.
func (m *Manager) Acquire(telegramID int64) func() {
	m.mu.Lock()
	lock, ok := m.locks[telegramID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[telegramID] = lock
	}
	m.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Get возвращает копию сессии пользователя
func (m *Manager) Get(telegramID int64) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[telegramID]
	if !ok {
		return Session{}, false
	}

	copied := *s
	copied.Slots = append([]string(nil), s.Slots...)
	return copied, true
}

// Step возвращает текущий шаг пользователя (StepNone если сессии нет)
func (m *Manager) Step(telegramID int64) Step {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if s, ok := m.sessions[telegramID]; ok {
		return s.Step
	}
	return StepNone
}

// Put сохраняет сессию пользователя целиком
func (m *Manager) Put(telegramID int64, s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := s
	stored.Slots = append([]string(nil), s.Slots...)
	m.sessions[telegramID] = &stored
}

// Clear удаляет сессию пользователя
func (m *Manager) Clear(telegramID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, telegramID)
}
