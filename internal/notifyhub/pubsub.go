package notifyhub

import (
	"encoding/json"
	"log"

	"hostelgo/backend/internal/models"
)

// StartPubSubListener запускає Goroutine, яка слухає Redis Pub/Sub і передає
// декодовані події у головний канал обробки хаба.
func (m *ManagerService) StartPubSubListener() {
	if m.Source == nil {
		return
	}

	go func() {
		pubsub := m.Source.SubscribeEvents()
		defer pubsub.Close()

		ch := pubsub.Channel()

		for msg := range ch {
			var event models.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("ERROR: Failed to unmarshal Redis event: %v", err)
				continue
			}

			m.PubSubCh <- event
		}
	}()
}
