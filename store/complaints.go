// Package store implements the service store contracts on MongoDB.
package store

import (
	"context"
	"errors"

	"cityserve-be/models"
	"cityserve-be/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// earthRadiusKm is the mean Earth radius used to convert kilometers into
// the angular radius $centerSphere expects.
const earthRadiusKm = 6371.0

// Complaints is the MongoDB-backed complaint store
type Complaints struct {
	collection *mongo.Collection
}

// NewComplaints returns a complaint store over db's "complaints" collection
func NewComplaints(db *mongo.Database) *Complaints {
	return &Complaints{collection: db.Collection("complaints")}
}

// Collection exposes the underlying collection for index bootstrap
func (s *Complaints) Collection() *mongo.Collection {
	return s.collection
}

func (s *Complaints) Insert(ctx context.Context, c *models.Complaint) error {
	_, err := s.collection.InsertOne(ctx, c)
	return err
}

func (s *Complaints) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&complaint)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

func (s *Complaints) Find(ctx context.Context, filter services.ComplaintFilter) ([]models.Complaint, error) {
	query := bson.M{}
	if filter.User != nil {
		query["user"] = *filter.User
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var complaints []models.Complaint
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

// Replace overwrites the stored document in one atomic write
func (s *Complaints) Replace(ctx context.Context, c *models.Complaint) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *Complaints) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

// CenterSphereFilter builds the $geoWithin query for every complaint within
// distanceKm kilometers of (lng, lat) on the spherical Earth model.
func CenterSphereFilter(lng, lat, distanceKm float64) bson.M {
	return bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{bson.A{lng, lat}, distanceKm / earthRadiusKm},
			},
		},
	}
}

func (s *Complaints) WithinRadius(ctx context.Context, lng, lat, distanceKm float64) ([]models.Complaint, error) {
	cursor, err := s.collection.Find(ctx, CenterSphereFilter(lng, lat, distanceKm))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var complaints []models.Complaint
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (s *Complaints) Stats(ctx context.Context) (*models.ComplaintStats, error) {
	stats := &models.ComplaintStats{}

	var err error
	if stats.Total, err = s.collection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.Pending, err = s.collection.CountDocuments(ctx, bson.M{"status": models.Pending}); err != nil {
		return nil, err
	}
	if stats.InProgress, err = s.collection.CountDocuments(ctx, bson.M{"status": models.InProgress}); err != nil {
		return nil, err
	}
	if stats.Resolved, err = s.collection.CountDocuments(ctx, bson.M{"status": models.Resolved}); err != nil {
		return nil, err
	}
	if stats.Rejected, err = s.collection.CountDocuments(ctx, bson.M{"status": models.Rejected}); err != nil {
		return nil, err
	}

	pipeline := []bson.M{
		{
			"$group": bson.M{
				"_id":   "$category",
				"count": bson.M{"$sum": 1},
			},
		},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &stats.ByCategory); err != nil {
		return nil, err
	}
	return stats, nil
}
