package notifications

import (
	"sync"

	"github.com/google/uuid"
)

// Hub fans published notifications out to in-process subscribers. Slow
// subscribers never block a publish; when a subscriber's buffer is full the
// notification is dropped for that subscriber only.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Notification
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Notification)}
}

// Subscribe registers a listener and returns its channel plus an
// unsubscribe function. Unsubscribe closes the channel and is safe to call
// more than once.
func (h *Hub) Subscribe() (<-chan Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan Notification, 16)
	h.subs[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub)
			}
		})
	}
	return ch, unsubscribe
}

// Publish assigns the notification an id and timestamp if missing and
// delivers it to every current subscriber.
func (h *Hub) Publish(n Notification) Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Kind == "" {
		n.Kind = KindInfo
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.subs {
		select {
		case sub <- n:
		default:
		}
	}
	return n
}

// SubscriberCount reports how many listeners are attached.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
