// Package complaint implements the complaint lifecycle: creation by students,
// status transitions by administrators, the append-only audit ledger and the
// listing/statistics queries built on top of it.
package complaint

import (
	"errors"
	"log"
	"strings"
	"time"

	"hostelgo/backend/internal/config"
	"hostelgo/backend/internal/models"
	"hostelgo/backend/internal/storage"

	"github.com/lib/pq"
)

// Publisher is the injected fan-out capability. Delivery is best-effort: a
// failed publish must never fail the mutation that triggered it.
type Publisher interface {
	Publish(event models.Event) error
}

// Service handles the business logic for complaints.
type Service struct {
	Storage storage.Storage
	Events  Publisher
}

// NewService creates a new complaint service.
func NewService(s storage.Storage, events Publisher) *Service {
	return &Service{Storage: s, Events: events}
}

// CreateRequest carries the student-supplied fields of a new complaint.
type CreateRequest struct {
	RoomNumber  string   `json:"roomNumber"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Attachments []string `json:"attachments"`
}

// Create validates the request and stores a new pending complaint owned by
// the acting student. Broadcasts a complaint-created event to the admin topic.
func (s *Service) Create(p models.Principal, req CreateRequest) (*models.Complaint, error) {
	if !p.IsStudent() {
		return nil, &AuthorizationError{Message: "only students can submit complaints"}
	}

	roomNumber := strings.TrimSpace(req.RoomNumber)
	if roomNumber == "" {
		return nil, &ValidationError{Message: "Room number is required"}
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, &ValidationError{Message: "Description is required"}
	}
	category := models.Category(req.Category)
	if !models.ValidCategory(category) {
		return nil, &ValidationError{Message: "Valid category is required"}
	}

	complaint := &models.Complaint{
		StudentID:   p.ID,
		StudentName: p.Name,
		UserID:      p.UserID,
		RoomNumber:  roomNumber,
		Category:    category,
		Description: description,
		Status:      models.StatusPending,
		Attachments: pq.StringArray(req.Attachments),
	}

	if err := s.Storage.CreateComplaint(complaint); err != nil {
		return nil, &PersistenceError{Op: "create complaint", Err: err}
	}

	s.publish(models.TopicAdmin, models.EventComplaintCreated, complaint)

	return complaint, nil
}

// Transition moves a complaint to newStatus on behalf of an admin and appends
// one audit record. Any status-to-status transition is allowed, including a
// transition to the current status (captures notes-only updates). Notes, when
// provided, overwrite the complaint's admin notes. A transition to resolved
// refreshes the resolver identity and resolution time even if the complaint
// was already resolved.
func (s *Service) Transition(p models.Principal, complaintID string, newStatus models.Status, notes string) (*models.Complaint, error) {
	if !p.IsAdmin() {
		return nil, &AuthorizationError{Message: "only administrators can update complaint status"}
	}
	if !models.ValidStatus(newStatus) {
		return nil, &ValidationError{Message: "Valid status is required"}
	}

	complaint, err := s.Storage.GetComplaintByID(complaintID)
	if err != nil {
		if errors.Is(err, storage.ErrComplaintNotFound) {
			return nil, &NotFoundError{Message: "Complaint not found"}
		}
		return nil, &PersistenceError{Op: "load complaint", Err: err}
	}

	previousStatus := complaint.Status
	complaint.Status = newStatus

	notes = strings.TrimSpace(notes)
	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
		complaint.AdminNotes = &notes
	}

	if newStatus == models.StatusResolved {
		now := time.Now()
		adminID := p.ID
		adminName := p.Name
		complaint.ResolvedByID = &adminID
		complaint.ResolvedByName = &adminName
		complaint.ResolvedAt = &now
	}
	complaint.UpdatedAt = time.Now()

	update := &models.AdminUpdate{
		ComplaintID:    complaint.ID,
		AdminID:        p.ID,
		AdminName:      p.Name,
		PreviousStatus: previousStatus,
		NewStatus:      newStatus,
		Notes:          notesPtr,
	}

	if err := s.Storage.ApplyTransition(complaint, update); err != nil {
		return nil, &PersistenceError{Op: "apply transition", Err: err}
	}

	studentKind := models.EventComplaintUpdated
	if newStatus == models.StatusResolved {
		studentKind = models.EventComplaintResolved
	}
	s.publish(complaint.StudentID, studentKind, complaint)
	s.publish(models.TopicAdmin, models.EventComplaintStatusChanged, complaint)

	return complaint, nil
}

// Resolve marks a complaint resolved. It is a convenience wrapper over
// Transition: when no notes are given the fixed default note is recorded.
func (s *Service) Resolve(p models.Principal, complaintID, notes string) (*models.Complaint, error) {
	if strings.TrimSpace(notes) == "" {
		notes = config.DefaultResolutionNote
	}
	return s.Transition(p, complaintID, models.StatusResolved, notes)
}

// Get returns a complaint and its audit ledger, newest entries first. Admins
// may view any complaint; students only their own.
func (s *Service) Get(p models.Principal, complaintID string) (*models.Complaint, []models.AdminUpdate, error) {
	complaint, err := s.Storage.GetComplaintByID(complaintID)
	if err != nil {
		if errors.Is(err, storage.ErrComplaintNotFound) {
			return nil, nil, &NotFoundError{Message: "Complaint not found"}
		}
		return nil, nil, &PersistenceError{Op: "load complaint", Err: err}
	}

	if !p.IsAdmin() && complaint.StudentID != p.ID {
		return nil, nil, &AuthorizationError{Message: "Access denied"}
	}

	updates, err := s.Storage.ListAdminUpdates(complaintID)
	if err != nil {
		return nil, nil, &PersistenceError{Op: "load audit ledger", Err: err}
	}

	return complaint, updates, nil
}

// List returns complaints newest first. Admins see all complaints, optionally
// filtered by exact status; students see only their own and the filter is
// ignored.
func (s *Service) List(p models.Principal, statusFilter string) ([]models.Complaint, error) {
	if p.IsAdmin() {
		status := models.Status(statusFilter)
		if statusFilter == "" || statusFilter == "all" {
			status = ""
		} else if !models.ValidStatus(status) {
			return nil, &ValidationError{Message: "Valid status is required"}
		}

		complaints, err := s.Storage.ListComplaints(status)
		if err != nil {
			return nil, &PersistenceError{Op: "list complaints", Err: err}
		}
		return complaints, nil
	}

	complaints, err := s.Storage.ListComplaintsByStudent(p.ID)
	if err != nil {
		return nil, &PersistenceError{Op: "list complaints", Err: err}
	}
	return complaints, nil
}

// Stats computes per-status complaint counts over the full record set.
func (s *Service) Stats() (*models.Stats, error) {
	stats, err := s.Storage.CountByStatus()
	if err != nil {
		return nil, &PersistenceError{Op: "count complaints", Err: err}
	}
	return stats, nil
}

// publish fans an event out to one topic. Failures are logged and swallowed:
// the mutation already committed and a disconnected subscriber must not undo it.
func (s *Service) publish(topic, kind string, complaint *models.Complaint) {
	if s.Events == nil {
		return
	}
	event := models.Event{Topic: topic, Kind: kind, Complaint: complaint}
	if err := s.Events.Publish(event); err != nil {
		log.Printf("WARNING: Failed to publish %s event for complaint %s: %v", kind, complaint.ID, err)
	}
}
