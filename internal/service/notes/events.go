package notes

import (
	"sync"

	"notes-calendar/internal/model"
)

// subscriberBuffer размер буфера канала подписчика
const subscriberBuffer = 10

// EventService управляет подписчиками на изменения заметок.
// События доставляются только подписчикам того же пользователя.
type EventService struct {
	subscribers map[string]map[chan model.ChangeEvent]struct{}
	mu          sync.RWMutex
}

// NewEventService создает новый экземпляр EventService
func NewEventService() *EventService {
	return &EventService{
		subscribers: make(map[string]map[chan model.ChangeEvent]struct{}),
	}
}

// Subscribe добавляет подписчика пользователя userID и возвращает канал событий
func (s *EventService) Subscribe(userID string) chan model.ChangeEvent {
	ch := make(chan model.ChangeEvent, subscriberBuffer)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subscribers[userID] == nil {
		s.subscribers[userID] = make(map[chan model.ChangeEvent]struct{})
	}
	s.subscribers[userID][ch] = struct{}{}
	return ch
}

// Unsubscribe удаляет подписчика и закрывает его канал. Повторный вызов безопасен.
func (s *EventService) Unsubscribe(userID string, ch chan model.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subs := s.subscribers[userID]
	if _, ok := subs[ch]; !ok {
		return
	}
	close(ch)
	delete(subs, ch)
	if len(subs) == 0 {
		delete(s.subscribers, userID)
	}
}

// Publish отправляет событие подписчикам пользователя.
// Если канал подписчика переполнен, событие пропускается: подписчик
// все равно перечитает весь набор на следующем событии.
func (s *EventService) Publish(event model.ChangeEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.subscribers[event.UserID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount число активных подписчиков пользователя
func (s *EventService) SubscriberCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers[userID])
}
