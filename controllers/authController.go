package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"cityserve-be/middlewares"
	"cityserve-be/models"
	"cityserve-be/services"
	authUtils "cityserve-be/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthController handles registration, login and the current-user lookup
type AuthController struct {
	users services.UserStore
}

// NewAuthController wires the controller onto the user store
func NewAuthController(users services.UserStore) *AuthController {
	return &AuthController{users: users}
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"phone": user.Phone,
	}
}

// Register creates a new user account and returns a signed token
func (ctrl *AuthController) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role"`
		Phone    string `json:"phone"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	role := models.RoleCitizen
	if input.Role != "" {
		if !models.ValidRole(input.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid role"})
			return
		}
		role = models.Role(input.Role)
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		Role:      role,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.users.Insert(ctx, &user); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User with this email already exists"})
			return
		}
		log.Println("Error inserting user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
		return
	}

	token, err := authUtils.GenerateToken(user.ID.Hex(), string(user.Role))
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"user":    userPayload(&user),
	})
}

// Login verifies credentials and returns a signed token
func (ctrl *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := ctrl.users.FindByEmail(ctx, input.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	if !user.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := authUtils.GenerateToken(user.ID.Hex(), string(user.Role))
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    userPayload(user),
	})
}

// GetMe returns the account behind the presented token
func (ctrl *AuthController) GetMe(c *gin.Context) {
	actor, ok := middlewares.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := ctrl.users.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		log.Println("Error fetching user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": userPayload(user)})
}
