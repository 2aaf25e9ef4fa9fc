package services

import (
	"context"

	"cityserve-be/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ComplaintFilter narrows a listing. Empty fields are not applied; set
// fields combine with AND. User scopes the result to one owner.
type ComplaintFilter struct {
	Status   string
	Category string
	Priority string
	User     *primitive.ObjectID
}

// ComplaintStore is the persistence contract for complaints. FindByID and
// Delete return ErrNotFound when the id does not resolve. Find returns
// complaints newest-first.
type ComplaintStore interface {
	Insert(ctx context.Context, c *models.Complaint) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Complaint, error)
	Find(ctx context.Context, filter ComplaintFilter) ([]models.Complaint, error)
	Replace(ctx context.Context, c *models.Complaint) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// WithinRadius returns complaints whose location lies within distanceKm
	// kilometers (great-circle) of the given point.
	WithinRadius(ctx context.Context, lng, lat, distanceKm float64) ([]models.Complaint, error)
	Stats(ctx context.Context) (*models.ComplaintStats, error)
}

// UserStore is the persistence contract for the identity records this
// service references. Insert returns ErrEmailTaken on a duplicate email;
// the Find methods return ErrUserNotFound on a miss.
type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
}
