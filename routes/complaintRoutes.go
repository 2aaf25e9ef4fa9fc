package routes

import (
	"cityserve-be/controllers"
	"cityserve-be/middlewares"

	"github.com/gin-gonic/gin"
)

// ComplaintRoutes sets up the complaint routes. Every route requires a
// bearer token. createLimiter is optional; pass nil to disable the
// per-user daily creation cap.
func ComplaintRoutes(r *gin.Engine, ctrl *controllers.ComplaintController, createLimiter gin.HandlerFunc) {
	complaints := r.Group("/api/complaints", middlewares.AuthMiddleware())
	{
		complaints.GET("", ctrl.GetComplaints)
		complaints.GET("/stats", ctrl.GetStats)
		complaints.GET("/radius/:lng/:lat/:distance", ctrl.GetComplaintsInRadius)
		complaints.GET("/:id", ctrl.GetComplaint)
		complaints.PUT("/:id", ctrl.UpdateComplaint)
		complaints.DELETE("/:id", ctrl.DeleteComplaint)

		if createLimiter != nil {
			complaints.POST("", createLimiter, ctrl.CreateComplaint)
		} else {
			complaints.POST("", ctrl.CreateComplaint)
		}
	}
}
