package services

import (
	"context"
	"time"

	"cityserve-be/models"
	"cityserve-be/policy"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ComplaintService enforces the access-control policy and the complaint
// lifecycle rules in front of the stores. It holds no per-request state;
// the actor is passed into every call.
type ComplaintService struct {
	complaints ComplaintStore
	users      UserStore
}

// NewComplaintService wires the service onto its stores
func NewComplaintService(complaints ComplaintStore, users UserStore) *ComplaintService {
	return &ComplaintService{complaints: complaints, users: users}
}

// OwnerSummary is the slice of the owner record safe to attach to a
// complaint for display. Phone is only filled on single-complaint fetches.
type OwnerSummary struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name,omitempty"`
	Email string             `json:"email,omitempty"`
	Phone string             `json:"phone,omitempty"`
}

// ComplaintWithOwner is a complaint with its owner's display info attached
type ComplaintWithOwner struct {
	models.Complaint
	Owner OwnerSummary `json:"user"`
}

// CreateComplaintInput is the payload for a new complaint
type CreateComplaintInput struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Location    models.LocationInput `json:"location"`
	Status      *string              `json:"status,omitempty"`
	Priority    *string              `json:"priority,omitempty"`
	ImageURL    *string              `json:"image,omitempty"`
}

// List returns complaints matching the filter, newest first. Citizens only
// ever see their own complaints regardless of the filter supplied.
func (s *ComplaintService) List(ctx context.Context, actor models.Actor, filter ComplaintFilter) ([]ComplaintWithOwner, error) {
	if !actor.IsAdmin() {
		filter.User = &actor.ID
	}

	complaints, err := s.complaints.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.attachOwners(ctx, complaints, false)
}

// Get fetches a single complaint. A missing id is NotFound even for admins;
// an existing complaint the actor may not read is Unauthorized.
func (s *ComplaintService) Get(ctx context.Context, actor models.Actor, id primitive.ObjectID) (*ComplaintWithOwner, error) {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanRead(actor, complaint) {
		return nil, ErrUnauthorized
	}

	withOwner, err := s.attachOwners(ctx, []models.Complaint{*complaint}, true)
	if err != nil {
		return nil, err
	}
	return &withOwner[0], nil
}

// Create stores a new complaint with the actor as its owner. Status and
// priority default to pending/medium; only admins may seed other values.
func (s *ComplaintService) Create(ctx context.Context, actor models.Actor, input *CreateComplaintInput) (*models.Complaint, error) {
	if input.Location.Coordinates == nil {
		return nil, newValidationError("location.coordinates", "location coordinates are required")
	}

	now := time.Now()
	complaint := &models.Complaint{
		ID:          primitive.NewObjectID(),
		Title:       input.Title,
		Description: input.Description,
		Category:    models.ComplaintCategory(input.Category),
		Status:      models.Pending,
		Priority:    models.Medium,
		Location:    input.Location.ToLocation(),
		User:        actor.ID,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if actor.IsAdmin() {
		if input.Status != nil {
			complaint.Status = models.ComplaintStatus(*input.Status)
		}
		if input.Priority != nil {
			complaint.Priority = models.ComplaintPriority(*input.Priority)
		}
	}

	if errs := models.ValidateNewComplaint(complaint); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	if err := s.complaints.Insert(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// Update applies the payload to the complaint under the per-role field
// allow-list. Fields a citizen may not touch are dropped, not rejected.
// The transition into resolved stamps resolvedAt exactly once.
func (s *ComplaintService) Update(ctx context.Context, actor models.Actor, id primitive.ObjectID, upd *models.ComplaintUpdate) (*models.Complaint, error) {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanWrite(actor, complaint, upd.Fields()) {
		if actor.ID != complaint.User {
			return nil, ErrUnauthorized
		}
		// owner touched admin-only fields: drop them, keep the rest
		policy.RestrictUpdate(upd)
	}

	if errs := models.ValidateComplaintUpdate(upd); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	if upd.Title != nil {
		complaint.Title = *upd.Title
	}
	if upd.Description != nil {
		complaint.Description = *upd.Description
	}
	if upd.Category != nil {
		complaint.Category = models.ComplaintCategory(*upd.Category)
	}
	if upd.Location != nil {
		complaint.Location = upd.Location.ToLocation()
	}
	if upd.Status != nil {
		next := models.ComplaintStatus(*upd.Status)
		if next == models.Resolved && complaint.Status != models.Resolved {
			now := time.Now()
			complaint.ResolvedAt = &now
		}
		complaint.Status = next
	}
	if upd.Priority != nil {
		complaint.Priority = models.ComplaintPriority(*upd.Priority)
	}
	if upd.AdminNotes != nil {
		complaint.AdminNotes = *upd.AdminNotes
	}
	if upd.ImageURL != nil {
		complaint.ImageURL = upd.ImageURL
	}

	complaint.UpdatedAt = time.Now()

	if err := s.complaints.Replace(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// Delete permanently removes the complaint. No soft delete.
func (s *ComplaintService) Delete(ctx context.Context, actor models.Actor, id primitive.ObjectID) error {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !policy.CanDelete(actor, complaint) {
		return ErrUnauthorized
	}

	return s.complaints.Delete(ctx, id)
}

// WithinRadius returns complaints within distanceKm kilometers of the point.
// Any authenticated actor may call it; results are not owner-scoped.
func (s *ComplaintService) WithinRadius(ctx context.Context, lng, lat, distanceKm float64) ([]ComplaintWithOwner, error) {
	if lng < -180 || lng > 180 {
		return nil, newValidationError("lng", "longitude must be between -180 and 180")
	}
	if lat < -90 || lat > 90 {
		return nil, newValidationError("lat", "latitude must be between -90 and 90")
	}
	if distanceKm < 0 {
		return nil, newValidationError("distance", "distance cannot be negative")
	}

	complaints, err := s.complaints.WithinRadius(ctx, lng, lat, distanceKm)
	if err != nil {
		return nil, err
	}

	return s.attachOwners(ctx, complaints, false)
}

// Stats returns the aggregate counts. Admin only.
func (s *ComplaintService) Stats(ctx context.Context, actor models.Actor) (*models.ComplaintStats, error) {
	if !policy.CanViewStats(actor) {
		return nil, ErrUnauthorized
	}
	return s.complaints.Stats(ctx)
}

func (s *ComplaintService) attachOwners(ctx context.Context, complaints []models.Complaint, withPhone bool) ([]ComplaintWithOwner, error) {
	ids := make([]primitive.ObjectID, 0, len(complaints))
	seen := make(map[primitive.ObjectID]bool, len(complaints))
	for _, c := range complaints {
		if !seen[c.User] {
			seen[c.User] = true
			ids = append(ids, c.User)
		}
	}

	owners := make(map[primitive.ObjectID]models.User, len(ids))
	if len(ids) > 0 {
		users, err := s.users.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			owners[u.ID] = u
		}
	}

	result := make([]ComplaintWithOwner, 0, len(complaints))
	for _, c := range complaints {
		summary := OwnerSummary{ID: c.User}
		if owner, ok := owners[c.User]; ok {
			summary.Name = owner.Name
			summary.Email = owner.Email
			if withPhone {
				summary.Phone = owner.Phone
			}
		}
		result = append(result, ComplaintWithOwner{Complaint: c, Owner: summary})
	}
	return result, nil
}
