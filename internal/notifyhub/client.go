package notifyhub

import "hostelgo/backend/internal/models"

// Client is the interface for one subscribed connection. It abstracts the
// underlying transport so the hub can manage different client types uniformly.
type Client interface {
	// GetUserID returns the unique identifier of the user behind the client.
	GetUserID() string
	// GetRole returns the user's role; admin clients receive the shared admin
	// topic in addition to their own.
	GetRole() string

	// GetSendChannel returns the channel the hub delivers events through.
	// It is a send-only channel.
	GetSendChannel() chan<- models.Event

	// Run starts the client's read and write pumps.
	Run()
	// Close gracefully shuts down the client's connection and channels.
	Close()
}
