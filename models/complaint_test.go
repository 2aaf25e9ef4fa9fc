package models

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validComplaint() *Complaint {
	return &Complaint{
		ID:          primitive.NewObjectID(),
		Title:       "Large pothole on Main Road",
		Description: "There is a dangerous pothole near the traffic signal.",
		Category:    Pothole,
		Status:      Pending,
		Priority:    Medium,
		Location:    NewLocation(78.4867, 17.3850, "Main Road, Banjara Hills, Hyderabad"),
		User:        primitive.NewObjectID(),
	}
}

func fieldNames(errs []FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, fe := range errs {
		names = append(names, fe.Field)
	}
	return names
}

func TestNewLocationCoordinateOrder(t *testing.T) {
	loc := NewLocation(78.4867, 17.3850, "")

	assert.Equal(t, "Point", loc.Type)
	// GeoJSON order is [longitude, latitude], never [lat, lng]
	assert.Equal(t, 78.4867, loc.Coordinates.Lon())
	assert.Equal(t, 17.3850, loc.Coordinates.Lat())
}

func TestValidateNewComplaintOK(t *testing.T) {
	assert.Empty(t, ValidateNewComplaint(validComplaint()))
}

func TestValidateNewComplaintRequiredFields(t *testing.T) {
	c := validComplaint()
	c.Title = ""
	c.Description = ""
	c.Category = ""
	c.Location = Location{}

	errs := ValidateNewComplaint(c)
	names := fieldNames(errs)
	assert.Contains(t, names, "title")
	assert.Contains(t, names, "description")
	assert.Contains(t, names, "category")
	assert.Contains(t, names, "location")
}

func TestValidateNewComplaintLengthLimits(t *testing.T) {
	c := validComplaint()
	c.Title = strings.Repeat("a", MaxTitleLen+1)
	c.Description = strings.Repeat("b", MaxDescriptionLen+1)
	c.AdminNotes = strings.Repeat("c", MaxAdminNotesLen+1)

	names := fieldNames(ValidateNewComplaint(c))
	assert.Contains(t, names, "title")
	assert.Contains(t, names, "description")
	assert.Contains(t, names, "adminNotes")

	c = validComplaint()
	c.Title = strings.Repeat("a", MaxTitleLen)
	assert.Empty(t, ValidateNewComplaint(c))
}

func TestValidateNewComplaintEnums(t *testing.T) {
	c := validComplaint()
	c.Category = "graffiti"
	c.Status = "closed"
	c.Priority = "urgent"

	names := fieldNames(ValidateNewComplaint(c))
	assert.Contains(t, names, "category")
	assert.Contains(t, names, "status")
	assert.Contains(t, names, "priority")
}

func TestValidateNewComplaintCoordinateRange(t *testing.T) {
	c := validComplaint()
	c.Location = NewLocation(181, 17.3850, "")
	require.Len(t, ValidateNewComplaint(c), 1)

	c.Location = NewLocation(78.4867, -91, "")
	require.Len(t, ValidateNewComplaint(c), 1)
}

func TestValidateComplaintUpdate(t *testing.T) {
	empty := ""
	longTitle := strings.Repeat("a", MaxTitleLen+1)
	badStatus := "closed"
	goodTitle := "Huge pothole"

	assert.Empty(t, ValidateComplaintUpdate(&ComplaintUpdate{}))
	assert.Empty(t, ValidateComplaintUpdate(&ComplaintUpdate{Title: &goodTitle}))

	errs := ValidateComplaintUpdate(&ComplaintUpdate{Title: &empty})
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)

	errs = ValidateComplaintUpdate(&ComplaintUpdate{Title: &longTitle, Status: &badStatus})
	assert.Len(t, errs, 2)

	errs = ValidateComplaintUpdate(&ComplaintUpdate{Location: &LocationInput{}})
	require.Len(t, errs, 1)
	assert.Equal(t, "location.coordinates", errs[0].Field)

	point := orb.Point{78.4867, 17.3850}
	assert.Empty(t, ValidateComplaintUpdate(&ComplaintUpdate{Location: &LocationInput{Coordinates: &point}}))
}

func TestComplaintUpdateFields(t *testing.T) {
	title := "t"
	status := "pending"
	notes := "n"

	upd := &ComplaintUpdate{Title: &title, Status: &status, AdminNotes: &notes}
	assert.ElementsMatch(t, []string{"title", "status", "adminNotes"}, upd.Fields())

	assert.Empty(t, (&ComplaintUpdate{}).Fields())
}

func TestEnumValidators(t *testing.T) {
	assert.True(t, ValidCategory("drainage"))
	assert.False(t, ValidCategory("Road"))

	assert.True(t, ValidStatus("in-progress"))
	assert.False(t, ValidStatus("In Progress"))

	assert.True(t, ValidPriority("low"))
	assert.False(t, ValidPriority(""))

	assert.True(t, ValidRole("admin"))
	assert.False(t, ValidRole("moderator"))
}
