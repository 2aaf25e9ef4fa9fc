package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"cityserve-be/middlewares"
	"cityserve-be/models"
	"cityserve-be/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const requestTimeout = 10 * time.Second

// ComplaintController exposes the complaint service over HTTP
type ComplaintController struct {
	service *services.ComplaintService
}

// NewComplaintController wires the controller onto its service
func NewComplaintController(service *services.ComplaintService) *ComplaintController {
	return &ComplaintController{service: service}
}

// respondServiceError maps the service error taxonomy onto HTTP statuses
func respondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": vErr.Error(), "errors": vErr.Fields})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Complaint not found"})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not authorized to access this complaint"})
	default:
		log.Println("complaint service error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
	}
}

func requireActor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
	}
	return actor, ok
}

// GetComplaints lists complaints. Citizens only see their own; filters on
// status, category and priority combine with AND.
func (ctrl *ComplaintController) GetComplaints(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	filter := services.ComplaintFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	complaints, err := ctrl.service.List(ctx, actor, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(complaints),
		"data":    complaints,
	})
}

// GetComplaint fetches one complaint with the owner's contact info
func (ctrl *ComplaintController) GetComplaint(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	complaintID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid complaint ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	complaint, err := ctrl.service.Get(ctx, actor, complaintID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": complaint})
}

// CreateComplaint files a new complaint owned by the caller
func (ctrl *ComplaintController) CreateComplaint(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var input services.CreateComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	complaint, err := ctrl.service.Create(ctx, actor, &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": complaint})
}

// UpdateComplaint applies a partial update under the per-role allow-list
func (ctrl *ComplaintController) UpdateComplaint(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	complaintID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid complaint ID"})
		return
	}

	var upd models.ComplaintUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	complaint, err := ctrl.service.Update(ctx, actor, complaintID, &upd)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": complaint})
}

// DeleteComplaint permanently removes a complaint
func (ctrl *ComplaintController) DeleteComplaint(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	complaintID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid complaint ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.service.Delete(ctx, actor, complaintID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

// GetComplaintsInRadius returns every complaint within the given
// great-circle distance (km) of the lng/lat point
func (ctrl *ComplaintController) GetComplaintsInRadius(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	lng, err := strconv.ParseFloat(c.Param("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid longitude"})
		return
	}
	lat, err := strconv.ParseFloat(c.Param("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid latitude"})
		return
	}
	distance, err := strconv.ParseFloat(c.Param("distance"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid distance"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	complaints, err := ctrl.service.WithinRadius(ctx, lng, lat, distance)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(complaints),
		"data":    complaints,
	})
}

// GetStats serves the admin dashboard aggregates
func (ctrl *ComplaintController) GetStats(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	stats, err := ctrl.service.Stats(ctx, actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
