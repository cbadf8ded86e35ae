package notifyhub_test

import (
	"hostelgo/backend/internal/models"
)

// MockClient is a test double for the notifyhub.Client interface.
type MockClient struct {
	userID string
	role   string
	send   chan models.Event
	closed bool
}

func newMockClient(id, role string) *MockClient {
	return &MockClient{
		userID: id,
		role:   role,
		send:   make(chan models.Event, 10), // Buffered to prevent blocking in tests
	}
}

// newSlowMockClient has no buffer, so any delivery attempt blocks and the hub
// must drop it.
func newSlowMockClient(id, role string) *MockClient {
	return &MockClient{
		userID: id,
		role:   role,
		send:   make(chan models.Event),
	}
}

func (c *MockClient) GetUserID() string { return c.userID }

func (c *MockClient) GetRole() string { return c.role }

func (c *MockClient) GetSendChannel() chan<- models.Event { return c.send }

func (c *MockClient) Run() {}

func (c *MockClient) Close() {
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// DrainEvents returns every event delivered so far.
func (c *MockClient) DrainEvents() []models.Event {
	var events []models.Event
	for {
		select {
		case event := <-c.send:
			events = append(events, event)
		default:
			return events
		}
	}
}
