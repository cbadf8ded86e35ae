package complaint_test

import (
	"hostelgo/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of the storage.Storage interface.
// It uses testify/mock to allow flexible expectation setting in tests.
type MockStorage struct {
	mock.Mock
}

// User operations
func (m *MockStorage) SaveUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) UserExists(email, userID string) (bool, error) {
	args := m.Called(email, userID)
	return args.Bool(0), args.Error(1)
}

// Complaint operations
func (m *MockStorage) CreateComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *MockStorage) GetComplaintByID(id string) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) ListComplaints(status models.Status) ([]models.Complaint, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) ListComplaintsByStudent(studentID string) ([]models.Complaint, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) ApplyTransition(complaint *models.Complaint, update *models.AdminUpdate) error {
	args := m.Called(complaint, update)
	return args.Error(0)
}

func (m *MockStorage) ListAdminUpdates(complaintID string) ([]models.AdminUpdate, error) {
	args := m.Called(complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdminUpdate), args.Error(1)
}

func (m *MockStorage) CountByStatus() (*models.Stats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}

func (m *MockStorage) Publish(event models.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

// MockPublisher records the events the lifecycle engine fans out.
type MockPublisher struct {
	mock.Mock
	Events []models.Event
}

func (p *MockPublisher) Publish(event models.Event) error {
	p.Events = append(p.Events, event)
	args := p.Called(event)
	return args.Error(0)
}
