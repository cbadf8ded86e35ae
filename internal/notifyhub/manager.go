// Package notifyhub fans complaint events out to connected websocket clients.
// Each student is subscribed to a topic keyed by their own identity; every
// administrator is additionally subscribed to the shared admin topic. Events
// travel through Redis Pub/Sub so every hub instance sees every mutation.
package notifyhub

import (
	"log"

	"hostelgo/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// EventSource provides the hub's subscription to the complaint event stream.
// The storage service satisfies it.
type EventSource interface {
	SubscribeEvents() *redis.PubSub
}

// ManagerService owns the registry of connected clients and routes events to
// the right audiences.
type ManagerService struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client

	// PubSubCh receives events decoded from the Redis stream.
	PubSubCh chan models.Event

	Source EventSource
}

// NewManagerService створює новий хаб.
func NewManagerService(source EventSource) *ManagerService {
	return &ManagerService{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		PubSubCh:     make(chan models.Event),
		Source:       source,
	}
}

// Run is the hub's main dispatcher goroutine.
func (m *ManagerService) Run() {
	m.StartPubSubListener()

	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client.GetUserID()] = client
			log.Printf("Client registered: %s (%s)", client.GetUserID(), client.GetRole())

		case client := <-m.UnregisterCh:
			if existing, ok := m.Clients[client.GetUserID()]; ok && existing == client {
				delete(m.Clients, client.GetUserID())
				client.Close()
				log.Printf("Client unregistered: %s", client.GetUserID())
			}

		case event := <-m.PubSubCh:
			m.dispatch(event)
		}
	}
}

// dispatch delivers one event to its audience: the shared admin topic reaches
// every connected admin, a student topic reaches only that student.
func (m *ManagerService) dispatch(event models.Event) {
	for _, client := range m.Clients {
		if !m.wants(client, event) {
			continue
		}
		select {
		case client.GetSendChannel() <- event:
		default:
			// Клієнт занадто повільний — відключаємо його.
			delete(m.Clients, client.GetUserID())
			client.Close()
			log.Printf("WARNING: Dropped slow client %s", client.GetUserID())
		}
	}
}

func (m *ManagerService) wants(client Client, event models.Event) bool {
	if event.Topic == models.TopicAdmin {
		return client.GetRole() == models.RoleAdmin
	}
	return client.GetUserID() == event.Topic
}
