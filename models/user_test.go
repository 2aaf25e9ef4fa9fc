package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPasswordHashing(t *testing.T) {
	u := &User{Password: "password123"}
	require.NoError(t, u.HashPassword())

	assert.NotEqual(t, "password123", u.Password)
	assert.True(t, u.ComparePassword("password123"))
	assert.False(t, u.ComparePassword("password124"))
}

func TestUserActor(t *testing.T) {
	u := &User{ID: primitive.NewObjectID(), Role: RoleAdmin}
	actor := u.Actor()

	assert.Equal(t, u.ID, actor.ID)
	assert.True(t, actor.IsAdmin())

	citizen := (&User{ID: primitive.NewObjectID(), Role: RoleCitizen}).Actor()
	assert.False(t, citizen.IsAdmin())
}
