package services

import (
	"context"
	"sort"

	"cityserve-be/models"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memComplaintStore is an in-memory ComplaintStore for exercising the
// service without Mongo. Radius matching uses haversine distance, the same
// spherical model $centerSphere queries against.
type memComplaintStore struct {
	complaints map[primitive.ObjectID]models.Complaint
}

func newMemComplaintStore() *memComplaintStore {
	return &memComplaintStore{complaints: make(map[primitive.ObjectID]models.Complaint)}
}

func (s *memComplaintStore) Insert(_ context.Context, c *models.Complaint) error {
	s.complaints[c.ID] = *c
	return nil
}

func (s *memComplaintStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Complaint, error) {
	c, ok := s.complaints[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *memComplaintStore) Find(_ context.Context, filter ComplaintFilter) ([]models.Complaint, error) {
	var result []models.Complaint
	for _, c := range s.complaints {
		if filter.User != nil && c.User != *filter.User {
			continue
		}
		if filter.Status != "" && string(c.Status) != filter.Status {
			continue
		}
		if filter.Category != "" && string(c.Category) != filter.Category {
			continue
		}
		if filter.Priority != "" && string(c.Priority) != filter.Priority {
			continue
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *memComplaintStore) Replace(_ context.Context, c *models.Complaint) error {
	if _, ok := s.complaints[c.ID]; !ok {
		return ErrNotFound
	}
	s.complaints[c.ID] = *c
	return nil
}

func (s *memComplaintStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.complaints[id]; !ok {
		return ErrNotFound
	}
	delete(s.complaints, id)
	return nil
}

func (s *memComplaintStore) WithinRadius(_ context.Context, lng, lat, distanceKm float64) ([]models.Complaint, error) {
	center := orb.Point{lng, lat}
	var result []models.Complaint
	for _, c := range s.complaints {
		if geo.DistanceHaversine(c.Location.Coordinates, center) <= distanceKm*1000 {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *memComplaintStore) Stats(_ context.Context) (*models.ComplaintStats, error) {
	stats := &models.ComplaintStats{}
	byCategory := make(map[models.ComplaintCategory]int64)
	for _, c := range s.complaints {
		stats.Total++
		switch c.Status {
		case models.Pending:
			stats.Pending++
		case models.InProgress:
			stats.InProgress++
		case models.Resolved:
			stats.Resolved++
		case models.Rejected:
			stats.Rejected++
		}
		byCategory[c.Category]++
	}
	for category, count := range byCategory {
		stats.ByCategory = append(stats.ByCategory, models.CategoryCount{Category: category, Count: count})
	}
	return stats, nil
}

type memUserStore struct {
	users map[primitive.ObjectID]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *memUserStore) Insert(_ context.Context, u *models.User) error {
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	s.users[u.ID] = *u
	return nil
}

func (s *memUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *memUserStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	var users []models.User
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}
