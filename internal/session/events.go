package session

// EventKind identifie la partie de l'état qui vient de changer.
type EventKind string

const (
	EventSession  EventKind = "session_updated"
	EventCart     EventKind = "cart_updated"
	EventWishlist EventKind = "wishlist_updated"
)

type Event struct {
	Kind EventKind
}

// Subscribe enregistre un abonné aux changements d'état (websocket de
// synchro UI). Le canal est bufferisé : un abonné lent perd des
// notifications au lieu de bloquer les mutations.
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan Event, 8)
	s.subscribers[id] = ch

	unsubscribe := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if ch, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(ch)
		}
	}
	return ch, unsubscribe
}

// notifyLocked diffuse un événement à tous les abonnés. Appelé sous verrou.
func (s *Store) notifyLocked(kind EventKind) {
	for _, ch := range s.subscribers {
		select {
		case ch <- Event{Kind: kind}:
		default:
			// Abonné saturé : on saute cette notification.
		}
	}
}
