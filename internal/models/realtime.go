package models

// TopicAdmin is the shared topic every connected administrator is subscribed
// to. Student topics are keyed by the owning student's identity.
const TopicAdmin = "admin"

// Event kinds delivered to subscribers.
const (
	EventComplaintCreated       = "complaint-created"
	EventComplaintUpdated       = "complaint-updated"
	EventComplaintResolved      = "complaint-resolved"
	EventComplaintStatusChanged = "complaint-status-changed"
)

// Event is a state-change notification fanned out to connected clients. The
// payload carries the full refreshed complaint so subscribers never need a
// follow-up fetch.
type Event struct {
	Topic     string     `json:"topic"`
	Kind      string     `json:"kind"`
	Complaint *Complaint `json:"complaint"`
}
