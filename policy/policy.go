// Package policy holds the pure access-control decisions for complaints.
// Citizens act on their own complaints through an explicit field allow-list;
// admins act on everything. Nothing here touches the store.
package policy

import (
	"cityserve-be/models"
)

// CitizenFields is the allow-list of complaint fields a citizen may change
// on their own complaint. Anything outside this list is admin-only; fields
// added to the model later stay locked down until listed here.
var CitizenFields = map[string]bool{
	"title":       true,
	"description": true,
	"category":    true,
	"location":    true,
}

// CanRead reports whether the actor may fetch the complaint
func CanRead(actor models.Actor, c *models.Complaint) bool {
	return actor.IsAdmin() || actor.ID == c.User
}

// CanList always allows listing; citizens get an owner-scoped result set
// instead of a denial.
func CanList(actor models.Actor) bool {
	return true
}

// CanWrite reports whether the actor may apply the named fields to the
// complaint. Admins may write any field; the owner only allow-listed ones.
func CanWrite(actor models.Actor, c *models.Complaint, fields []string) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.ID != c.User {
		return false
	}
	for _, f := range fields {
		if !CitizenFields[f] {
			return false
		}
	}
	return true
}

// RestrictUpdate drops every field outside CitizenFields from the update.
// Disallowed fields submitted by a citizen are silently ignored rather than
// rejected, matching the service's documented update policy.
func RestrictUpdate(u *models.ComplaintUpdate) {
	u.Status = nil
	u.Priority = nil
	u.AdminNotes = nil
	u.ImageURL = nil
}

// CanDelete reports whether the actor may permanently remove the complaint
func CanDelete(actor models.Actor, c *models.Complaint) bool {
	return actor.IsAdmin() || actor.ID == c.User
}

// CanViewStats restricts the aggregate dashboard to admins
func CanViewStats(actor models.Actor) bool {
	return actor.IsAdmin()
}
