package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"cityserve-be/config"
	"cityserve-be/controllers"
	"cityserve-be/middlewares"
	"cityserve-be/models"
	"cityserve-be/routes"
	"cityserve-be/services"
	"cityserve-be/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("MongoDB connection established successfully!")

	complaintStore := store.NewComplaints(db)
	userStore := store.NewUsers(db)

	if err := models.EnsureComplaintIndexes(complaintStore.Collection()); err != nil {
		log.Fatalf("Failed to create complaint indexes: %v", err)
	}
	if err := models.EnsureUserIndexes(userStore.Collection()); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}

	complaintService := services.NewComplaintService(complaintStore, userStore)
	complaintController := controllers.NewComplaintController(complaintService)
	authController := controllers.NewAuthController(userStore)

	var createLimiter gin.HandlerFunc
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	if rdb != nil {
		limit := 10
		if v := os.Getenv("COMPLAINT_DAILY_LIMIT"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				limit = parsed
			}
		}
		createLimiter = middlewares.CreateRateLimiter(rdb, limit)
		log.Printf("Complaint rate limiting enabled (%d per day)", limit)
	} else {
		log.Println("REDIS_ADDRESS not set, complaint rate limiting disabled")
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	routes.AuthRoutes(r, authController)
	routes.ComplaintRoutes(r, complaintController, createLimiter)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "CityServe API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
