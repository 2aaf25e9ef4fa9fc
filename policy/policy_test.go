package policy

import (
	"testing"

	"cityserve-be/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func actors() (owner, stranger, admin models.Actor) {
	owner = models.Actor{ID: primitive.NewObjectID(), Role: models.RoleCitizen}
	stranger = models.Actor{ID: primitive.NewObjectID(), Role: models.RoleCitizen}
	admin = models.Actor{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	return
}

func TestCanRead(t *testing.T) {
	owner, stranger, admin := actors()
	complaint := &models.Complaint{User: owner.ID}

	assert.True(t, CanRead(owner, complaint))
	assert.True(t, CanRead(admin, complaint))
	assert.False(t, CanRead(stranger, complaint))
}

func TestCanList(t *testing.T) {
	owner, stranger, admin := actors()

	assert.True(t, CanList(owner))
	assert.True(t, CanList(stranger))
	assert.True(t, CanList(admin))
}

func TestCanWrite(t *testing.T) {
	owner, stranger, admin := actors()
	complaint := &models.Complaint{User: owner.ID}

	assert.True(t, CanWrite(admin, complaint, []string{"status", "priority", "adminNotes"}))
	assert.True(t, CanWrite(owner, complaint, []string{"title", "description", "category", "location"}))
	assert.False(t, CanWrite(owner, complaint, []string{"title", "status"}))
	assert.False(t, CanWrite(owner, complaint, []string{"adminNotes"}))
	assert.False(t, CanWrite(stranger, complaint, []string{"title"}))
}

func TestCanDelete(t *testing.T) {
	owner, stranger, admin := actors()
	complaint := &models.Complaint{User: owner.ID}

	assert.True(t, CanDelete(owner, complaint))
	assert.True(t, CanDelete(admin, complaint))
	assert.False(t, CanDelete(stranger, complaint))
}

func TestCanViewStats(t *testing.T) {
	owner, _, admin := actors()

	assert.True(t, CanViewStats(admin))
	assert.False(t, CanViewStats(owner))
}

func TestRestrictUpdate(t *testing.T) {
	title := "new title"
	status := "resolved"
	priority := "high"
	notes := "crew dispatched"
	image := "https://example.com/p.jpg"

	upd := &models.ComplaintUpdate{
		Title:      &title,
		Status:     &status,
		Priority:   &priority,
		AdminNotes: &notes,
		ImageURL:   &image,
	}

	RestrictUpdate(upd)

	assert.NotNil(t, upd.Title)
	assert.Nil(t, upd.Status)
	assert.Nil(t, upd.Priority)
	assert.Nil(t, upd.AdminNotes)
	assert.Nil(t, upd.ImageURL)
}
