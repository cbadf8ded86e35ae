package notifyhub_test

import (
	"testing"
	"time"

	"hostelgo/backend/internal/models"
	"hostelgo/backend/internal/notifyhub"

	"github.com/stretchr/testify/assert"
)

func TestManager_RegisterUnregister(t *testing.T) {
	hub := notifyhub.NewManagerService(nil)

	clientA := newMockClient("student-1", models.RoleStudent)

	go hub.Run()

	hub.RegisterCh <- clientA
	time.Sleep(100 * time.Millisecond)
	assert.Contains(t, hub.Clients, "student-1")

	hub.UnregisterCh <- clientA
	time.Sleep(100 * time.Millisecond)
	assert.NotContains(t, hub.Clients, "student-1")
	assert.True(t, clientA.closed)
}

func TestManager_AdminTopicReachesAdminsOnly(t *testing.T) {
	hub := notifyhub.NewManagerService(nil)

	student := newMockClient("student-1", models.RoleStudent)
	admin1 := newMockClient("admin-1", models.RoleAdmin)
	admin2 := newMockClient("admin-2", models.RoleAdmin)

	go hub.Run()

	hub.RegisterCh <- student
	hub.RegisterCh <- admin1
	hub.RegisterCh <- admin2
	time.Sleep(100 * time.Millisecond)

	hub.PubSubCh <- models.Event{
		Topic:     models.TopicAdmin,
		Kind:      models.EventComplaintCreated,
		Complaint: &models.Complaint{ID: "complaint-1"},
	}
	time.Sleep(100 * time.Millisecond)

	assert.Empty(t, student.DrainEvents())
	assert.Len(t, admin1.DrainEvents(), 1)
	assert.Len(t, admin2.DrainEvents(), 1)
}

func TestManager_StudentTopicReachesOwnerOnly(t *testing.T) {
	hub := notifyhub.NewManagerService(nil)

	owner := newMockClient("student-1", models.RoleStudent)
	other := newMockClient("student-2", models.RoleStudent)
	admin := newMockClient("admin-1", models.RoleAdmin)

	go hub.Run()

	hub.RegisterCh <- owner
	hub.RegisterCh <- other
	hub.RegisterCh <- admin
	time.Sleep(100 * time.Millisecond)

	hub.PubSubCh <- models.Event{
		Topic:     "student-1",
		Kind:      models.EventComplaintResolved,
		Complaint: &models.Complaint{ID: "complaint-1", StudentID: "student-1"},
	}
	time.Sleep(100 * time.Millisecond)

	ownerEvents := owner.DrainEvents()
	assert.Len(t, ownerEvents, 1)
	assert.Equal(t, models.EventComplaintResolved, ownerEvents[0].Kind)
	assert.Empty(t, other.DrainEvents())
	assert.Empty(t, admin.DrainEvents())
}

func TestManager_SlowClientDropped(t *testing.T) {
	hub := notifyhub.NewManagerService(nil)

	slow := newSlowMockClient("admin-1", models.RoleAdmin)

	go hub.Run()

	hub.RegisterCh <- slow
	time.Sleep(100 * time.Millisecond)

	hub.PubSubCh <- models.Event{
		Topic:     models.TopicAdmin,
		Kind:      models.EventComplaintCreated,
		Complaint: &models.Complaint{ID: "complaint-1"},
	}
	time.Sleep(100 * time.Millisecond)

	assert.NotContains(t, hub.Clients, "admin-1")
	assert.True(t, slow.closed)
}

func TestManager_ReRegisterReplacesClient(t *testing.T) {
	hub := notifyhub.NewManagerService(nil)

	first := newMockClient("student-1", models.RoleStudent)
	second := newMockClient("student-1", models.RoleStudent)

	go hub.Run()

	hub.RegisterCh <- first
	hub.RegisterCh <- second
	time.Sleep(100 * time.Millisecond)

	// Unregistering the stale connection must not evict the new one.
	hub.UnregisterCh <- first
	time.Sleep(100 * time.Millisecond)
	assert.Contains(t, hub.Clients, "student-1")

	hub.PubSubCh <- models.Event{
		Topic:     "student-1",
		Kind:      models.EventComplaintUpdated,
		Complaint: &models.Complaint{ID: "complaint-1"},
	}
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, second.DrainEvents(), 1)
}
