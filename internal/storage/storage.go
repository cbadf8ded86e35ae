package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"hostelgo/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrComplaintNotFound is returned when a complaint id does not exist.
var ErrComplaintNotFound = errors.New("complaint not found")

// ErrUserNotFound is returned when a user lookup finds no record.
var ErrUserNotFound = errors.New("user not found")

// EventsChannel is the Redis Pub/Sub channel all complaint events go through.
const EventsChannel = "complaints:events"

type Storage interface {
	SaveUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UserExists(email, userID string) (bool, error)

	CreateComplaint(complaint *models.Complaint) error
	GetComplaintByID(id string) (*models.Complaint, error)
	ListComplaints(status models.Status) ([]models.Complaint, error)
	ListComplaintsByStudent(studentID string) ([]models.Complaint, error)
	ApplyTransition(complaint *models.Complaint, update *models.AdminUpdate) error
	ListAdminUpdates(complaintID string) ([]models.AdminUpdate, error)
	CountByStatus() (*models.Stats, error)

	Publish(event models.Event) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// SaveUser зберігає користувача в PostgreSQL
func (s *Service) SaveUser(user *models.User) error {
	return s.DB.Save(user).Error
}

// GetUserByID повертає користувача за його внутрішнім ID.
func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to get user %s: %v", id, err)
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail повертає користувача за email.
func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to get user by email: %v", err)
		return nil, err
	}
	return &user, nil
}

// UserExists reports whether a user with the given email or external user id
// is already registered.
func (s *Service) UserExists(email, userID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.User{}).
		Where("email = ? OR user_id = ?", email, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateComplaint зберігає нову скаргу в PostgreSQL
func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.StatusPending
	}

	result := s.DB.Create(complaint)
	if result.Error != nil {
		log.Printf("ERROR: Failed to save complaint for room %s: %v", complaint.RoomNumber, result.Error)
		return result.Error
	}
	return nil
}

// GetComplaintByID повертає скаргу за її ID.
func (s *Service) GetComplaintByID(id string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.Where("id = ?", id).First(&complaint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrComplaintNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to get complaint %s: %v", id, err)
		return nil, err
	}
	return &complaint, nil
}

// ListComplaints повертає всі скарги, найновіші першими. Якщо status не
// порожній, список фільтрується за точним збігом статусу.
func (s *Service) ListComplaints(status models.Status) ([]models.Complaint, error) {
	var complaints []models.Complaint
	q := s.DB.Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&complaints).Error; err != nil {
		log.Printf("ERROR: Failed to list complaints: %v", err)
		return nil, err
	}
	return complaints, nil
}

// ListComplaintsByStudent повертає скарги студента, найновіші першими.
func (s *Service) ListComplaintsByStudent(studentID string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&complaints).Error
	if err != nil {
		log.Printf("ERROR: Failed to list complaints for student %s: %v", studentID, err)
		return nil, err
	}
	return complaints, nil
}

// ApplyTransition persists a status transition: the updated complaint and its
// audit record are written in one transaction so the ledger never diverges
// from the complaint state.
func (s *Service) ApplyTransition(complaint *models.Complaint, update *models.AdminUpdate) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(complaint).Error; err != nil {
			return err
		}
		return tx.Create(update).Error
	})
	if err != nil {
		log.Printf("ERROR: Failed to apply transition for complaint %s: %v", complaint.ID, err)
	}
	return err
}

// ListAdminUpdates повертає журнал аудиту скарги, найновіші записи першими.
func (s *Service) ListAdminUpdates(complaintID string) ([]models.AdminUpdate, error) {
	var updates []models.AdminUpdate
	err := s.DB.Where("complaint_id = ?", complaintID).
		Order("created_at desc").
		Find(&updates).Error
	if err != nil {
		log.Printf("ERROR: Failed to list updates for complaint %s: %v", complaintID, err)
		return nil, err
	}
	return updates, nil
}

// CountByStatus computes per-status complaint counts. Counts are computed
// fresh on every call.
func (s *Service) CountByStatus() (*models.Stats, error) {
	stats := &models.Stats{}

	type row struct {
		Status models.Status
		Count  int64
	}
	var rows []row
	err := s.DB.Model(&models.Complaint{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		log.Printf("ERROR: Failed to count complaints by status: %v", err)
		return nil, err
	}

	for _, r := range rows {
		stats.Total += r.Count
		switch r.Status {
		case models.StatusPending:
			stats.Pending = r.Count
		case models.StatusInProgress:
			stats.InProgress = r.Count
		case models.StatusResolved:
			stats.Resolved = r.Count
		}
	}
	return stats, nil
}

// Publish публікує подію в Redis Pub/Sub
func (s *Service) Publish(event models.Event) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.Redis.Publish(s.Ctx, EventsChannel, string(eventBytes)).Err(); err != nil {
		return err
	}

	return nil
}

// SubscribeEvents підписується на канал подій у Redis.
func (s *Service) SubscribeEvents() *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, EventsChannel)
}
