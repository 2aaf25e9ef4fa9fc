package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCenterSphereFilter(t *testing.T) {
	filter := CenterSphereFilter(78.4867, 17.3850, 5)

	geoWithin, ok := filter["location"].(bson.M)["$geoWithin"].(bson.M)
	require.True(t, ok)
	centerSphere, ok := geoWithin["$centerSphere"].(bson.A)
	require.True(t, ok)
	require.Len(t, centerSphere, 2)

	center, ok := centerSphere[0].(bson.A)
	require.True(t, ok)
	// [longitude, latitude] order
	assert.Equal(t, 78.4867, center[0])
	assert.Equal(t, 17.3850, center[1])

	// kilometers to angular radius against the mean Earth radius
	radius, ok := centerSphere[1].(float64)
	require.True(t, ok)
	assert.InDelta(t, 5.0/6371.0, radius, 1e-12)
}

func TestCenterSphereFilterZeroRadius(t *testing.T) {
	filter := CenterSphereFilter(0, 0, 0)
	centerSphere := filter["location"].(bson.M)["$geoWithin"].(bson.M)["$centerSphere"].(bson.A)
	assert.Equal(t, 0.0, centerSphere[1])
}
