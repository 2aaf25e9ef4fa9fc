package models

import (
	"context"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ComplaintCategory enum
type ComplaintCategory string

const (
	Pothole     ComplaintCategory = "pothole"
	Waste       ComplaintCategory = "waste"
	Streetlight ComplaintCategory = "streetlight"
	Water       ComplaintCategory = "water"
	Drainage    ComplaintCategory = "drainage"
	Other       ComplaintCategory = "other"
)

// ComplaintStatus enum
type ComplaintStatus string

const (
	Pending    ComplaintStatus = "pending"
	InProgress ComplaintStatus = "in-progress"
	Resolved   ComplaintStatus = "resolved"
	Rejected   ComplaintStatus = "rejected"
)

// ComplaintPriority enum
type ComplaintPriority string

const (
	Low    ComplaintPriority = "low"
	Medium ComplaintPriority = "medium"
	High   ComplaintPriority = "high"
)

// Location is a GeoJSON Point. Coordinates are always [longitude, latitude],
// the order Mongo's 2dsphere index expects.
type Location struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates orb.Point `bson:"coordinates" json:"coordinates"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
}

// NewLocation builds a GeoJSON point from a lng/lat pair
func NewLocation(lng, lat float64, address string) Location {
	return Location{
		Type:        "Point",
		Coordinates: orb.Point{lng, lat},
		Address:     address,
	}
}

// Complaint represents a civic complaint reported by a citizen
type Complaint struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    ComplaintCategory  `bson:"category" json:"category"`
	Status      ComplaintStatus    `bson:"status" json:"status"`
	Priority    ComplaintPriority  `bson:"priority" json:"priority"`
	Location    Location           `bson:"location" json:"location"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	ImageURL    *string            `bson:"image,omitempty" json:"image,omitempty"`
	AdminNotes  string             `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	ResolvedAt  *time.Time         `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CategoryCount is one bucket of the category aggregation. Only categories
// with at least one complaint appear.
type CategoryCount struct {
	Category ComplaintCategory `bson:"_id" json:"_id"`
	Count    int64             `bson:"count" json:"count"`
}

// ComplaintStats holds the aggregate counts served to admins
type ComplaintStats struct {
	Total      int64           `json:"total"`
	Pending    int64           `json:"pending"`
	InProgress int64           `json:"inProgress"`
	Resolved   int64           `json:"resolved"`
	Rejected   int64           `json:"rejected"`
	ByCategory []CategoryCount `json:"byCategory"`
}

// ValidCategory reports whether s is one of the complaint categories
func ValidCategory(s string) bool {
	switch ComplaintCategory(s) {
	case Pothole, Waste, Streetlight, Water, Drainage, Other:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the complaint statuses
func ValidStatus(s string) bool {
	switch ComplaintStatus(s) {
	case Pending, InProgress, Resolved, Rejected:
		return true
	}
	return false
}

// ValidPriority reports whether s is one of the complaint priorities
func ValidPriority(s string) bool {
	switch ComplaintPriority(s) {
	case Low, Medium, High:
		return true
	}
	return false
}

// FieldError is a single validation failure on a named field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 1000
	MaxAdminNotesLen  = 500
)

func validateCoordinates(p orb.Point) *FieldError {
	if p.Lon() < -180 || p.Lon() > 180 {
		return &FieldError{Field: "location.coordinates", Message: "longitude must be between -180 and 180"}
	}
	if p.Lat() < -90 || p.Lat() > 90 {
		return &FieldError{Field: "location.coordinates", Message: "latitude must be between -90 and 90"}
	}
	return nil
}

// ValidateNewComplaint checks a complaint about to be inserted. It returns
// one FieldError per failing field, or nil when the complaint is storable.
func ValidateNewComplaint(c *Complaint) []FieldError {
	var errs []FieldError

	if c.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	} else if len(c.Title) > MaxTitleLen {
		errs = append(errs, FieldError{Field: "title", Message: fmt.Sprintf("title cannot be more than %d characters", MaxTitleLen)})
	}

	if c.Description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description is required"})
	} else if len(c.Description) > MaxDescriptionLen {
		errs = append(errs, FieldError{Field: "description", Message: fmt.Sprintf("description cannot be more than %d characters", MaxDescriptionLen)})
	}

	if c.Category == "" {
		errs = append(errs, FieldError{Field: "category", Message: "category is required"})
	} else if !ValidCategory(string(c.Category)) {
		errs = append(errs, FieldError{Field: "category", Message: "invalid category"})
	}

	if !ValidStatus(string(c.Status)) {
		errs = append(errs, FieldError{Field: "status", Message: "invalid status"})
	}
	if !ValidPriority(string(c.Priority)) {
		errs = append(errs, FieldError{Field: "priority", Message: "invalid priority"})
	}

	if c.Location.Type != "Point" {
		errs = append(errs, FieldError{Field: "location", Message: "location coordinates are required"})
	} else if fe := validateCoordinates(c.Location.Coordinates); fe != nil {
		errs = append(errs, *fe)
	}

	if len(c.AdminNotes) > MaxAdminNotesLen {
		errs = append(errs, FieldError{Field: "adminNotes", Message: fmt.Sprintf("admin notes cannot be more than %d characters", MaxAdminNotesLen)})
	}

	return errs
}

// LocationInput is the client-facing shape of a location. Coordinates is a
// pointer so a missing pair is distinguishable from [0, 0].
type LocationInput struct {
	Coordinates *orb.Point `json:"coordinates"`
	Address     string     `json:"address"`
}

// ToLocation converts validated input into the stored GeoJSON point
func (l *LocationInput) ToLocation() Location {
	return NewLocation(l.Coordinates.Lon(), l.Coordinates.Lat(), l.Address)
}

// ComplaintUpdate carries the fields a PUT may change. Nil means "leave as is".
type ComplaintUpdate struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Category    *string        `json:"category,omitempty"`
	Location    *LocationInput `json:"location,omitempty"`
	Status      *string        `json:"status,omitempty"`
	Priority    *string        `json:"priority,omitempty"`
	AdminNotes  *string        `json:"adminNotes,omitempty"`
	ImageURL    *string        `json:"image,omitempty"`
}

// Fields lists the names of the fields the update touches
func (u *ComplaintUpdate) Fields() []string {
	var fields []string
	if u.Title != nil {
		fields = append(fields, "title")
	}
	if u.Description != nil {
		fields = append(fields, "description")
	}
	if u.Category != nil {
		fields = append(fields, "category")
	}
	if u.Location != nil {
		fields = append(fields, "location")
	}
	if u.Status != nil {
		fields = append(fields, "status")
	}
	if u.Priority != nil {
		fields = append(fields, "priority")
	}
	if u.AdminNotes != nil {
		fields = append(fields, "adminNotes")
	}
	if u.ImageURL != nil {
		fields = append(fields, "image")
	}
	return fields
}

// ValidateComplaintUpdate checks only the fields the update touches
func ValidateComplaintUpdate(u *ComplaintUpdate) []FieldError {
	var errs []FieldError

	if u.Title != nil {
		if *u.Title == "" {
			errs = append(errs, FieldError{Field: "title", Message: "title is required"})
		} else if len(*u.Title) > MaxTitleLen {
			errs = append(errs, FieldError{Field: "title", Message: fmt.Sprintf("title cannot be more than %d characters", MaxTitleLen)})
		}
	}
	if u.Description != nil {
		if *u.Description == "" {
			errs = append(errs, FieldError{Field: "description", Message: "description is required"})
		} else if len(*u.Description) > MaxDescriptionLen {
			errs = append(errs, FieldError{Field: "description", Message: fmt.Sprintf("description cannot be more than %d characters", MaxDescriptionLen)})
		}
	}
	if u.Category != nil && !ValidCategory(*u.Category) {
		errs = append(errs, FieldError{Field: "category", Message: "invalid category"})
	}
	if u.Status != nil && !ValidStatus(*u.Status) {
		errs = append(errs, FieldError{Field: "status", Message: "invalid status"})
	}
	if u.Priority != nil && !ValidPriority(*u.Priority) {
		errs = append(errs, FieldError{Field: "priority", Message: "invalid priority"})
	}
	if u.Location != nil {
		if u.Location.Coordinates == nil {
			errs = append(errs, FieldError{Field: "location.coordinates", Message: "location coordinates are required"})
		} else if fe := validateCoordinates(*u.Location.Coordinates); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if u.AdminNotes != nil && len(*u.AdminNotes) > MaxAdminNotesLen {
		errs = append(errs, FieldError{Field: "adminNotes", Message: fmt.Sprintf("admin notes cannot be more than %d characters", MaxAdminNotesLen)})
	}

	return errs
}

// EnsureComplaintIndexes creates the 2dsphere index the radius query relies on
func EnsureComplaintIndexes(collection *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	}

	_, err := collection.Indexes().CreateOne(ctx, indexModel)
	return err
}
