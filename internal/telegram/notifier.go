// Package telegram pushes admin-topic complaint events to a Telegram chat so
// administrators are reachable even without the dashboard open. Delivery is
// best-effort, like every other fan-out channel.
package telegram

import (
	"encoding/json"
	"fmt"
	"log"

	"hostelgo/backend/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"
)

// EventSource provides the notifier's subscription to the complaint event
// stream. The storage service satisfies it.
type EventSource interface {
	SubscribeEvents() *redis.PubSub
}

// Notifier relays admin-topic events to one Telegram chat.
type Notifier struct {
	BotAPI *tgbotapi.BotAPI
	Source EventSource
	ChatID int64
}

// NewNotifier creates a Notifier for the given bot token and admin chat.
func NewNotifier(token string, chatID int64, source EventSource) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("✅ Authorized on account %s", bot.Self.UserName)

	return &Notifier{
		BotAPI: bot,
		Source: source,
		ChatID: chatID,
	}, nil
}

// Run consumes the event stream until the subscription closes. Intended to be
// started as a goroutine.
func (n *Notifier) Run() {
	pubsub := n.Source.SubscribeEvents()
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var event models.Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("ERROR: Failed to unmarshal Redis event: %v", err)
			continue
		}

		// Тільки адміністраторська аудиторія потрапляє в Telegram.
		if event.Topic != models.TopicAdmin || event.Complaint == nil {
			continue
		}

		text := formatEvent(event)
		if text == "" {
			continue
		}

		if _, err := n.BotAPI.Send(tgbotapi.NewMessage(n.ChatID, text)); err != nil {
			log.Printf("WARNING: Failed to send Telegram notification: %v", err)
		}
	}
}

func formatEvent(event models.Event) string {
	c := event.Complaint
	switch event.Kind {
	case models.EventComplaintCreated:
		return fmt.Sprintf("🆕 New complaint from %s (room %s)\nCategory: %s\n%s",
			c.StudentName, c.RoomNumber, c.Category, c.Description)
	case models.EventComplaintStatusChanged:
		text := fmt.Sprintf("🔄 Complaint from %s (room %s) is now %s",
			c.StudentName, c.RoomNumber, c.Status)
		if c.Status == models.StatusResolved && c.ResolvedByName != nil {
			text += fmt.Sprintf(" (resolved by %s)", *c.ResolvedByName)
		}
		return text
	}
	return ""
}
