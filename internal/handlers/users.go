package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/refind-dev/refind/db"
	"github.com/refind-dev/refind/internal/auth"
	"github.com/refind-dev/refind/internal/models"
	"github.com/refind-dev/refind/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest uses pointers so that an omitted field can be told
// apart from an explicit empty string: omitted fields fall back to the
// user's current values.
type UpdateUserRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Username        *string `json:"username"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profile_img_url"`
}

func ListUsers(ctx *gin.Context) {
	var users []models.User

	if err := db.DB.Preload("Posts").Preload("Comments").Find(&users).Error; err != nil {
		log.Printf("Failed to list users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.UserResponse, 0, len(users))

	for _, user := range users {
		response = append(response, types.NewUserResponse(user))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetUser(ctx *gin.Context) {
	var user models.User

	err := db.DB.Preload("Posts").Preload("Comments").First(&user, "id = ?", ctx.Param("id")).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Failed to fetch user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(user))
}

func CreateUser(ctx *gin.Context) {
	var body CreateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Body is missing field"})
		return
	}

	var existingUser models.User

	err := db.DB.Where("username = ?", body.Username).First(&existingUser).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := auth.HashPassword(body.Password)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		Name:         body.Name,
		Email:        body.Email,
		Username:     body.Username,
		PasswordHash: passwordHash,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewUserSummary(user))
}

func UpdateUser(ctx *gin.Context) {
	var user models.User

	err := db.DB.First(&user, "id = ?", ctx.Param("id")).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Failed to fetch user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var body UpdateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if body.Name != nil {
		user.Name = *body.Name
	}
	if body.Email != nil {
		user.Email = *body.Email
	}
	if body.Username != nil {
		user.Username = *body.Username
	}
	if body.Bio != nil {
		user.Bio = *body.Bio
	}
	if body.ProfileImageURL != nil {
		user.ProfileImageURL = *body.ProfileImageURL
	}

	// All five mutable columns are written back, supplied or not.
	updates := map[string]interface{}{
		"name":              user.Name,
		"email":             user.Email,
		"username":          user.Username,
		"bio":               user.Bio,
		"profile_image_url": user.ProfileImageURL,
	}

	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("Failed to update user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.Preload("Posts").Preload("Comments").First(&user, user.ID).Error; err != nil {
		log.Printf("Failed to refresh user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(user))
}

func DeleteUser(ctx *gin.Context) {
	var user models.User

	err := db.DB.Preload("Posts").Preload("Comments").First(&user, "id = ?", ctx.Param("id")).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Failed to fetch user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	postIDs := make([]uint, 0, len(user.Posts))

	for _, post := range user.Posts {
		postIDs = append(postIDs, post.ID)
	}

	// Removing the user takes their posts and comments with them, and
	// deleting those posts must also take comments left by other users,
	// regardless of whether the driver enforces foreign keys.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if len(postIDs) > 0 {
			if err := tx.Delete(&models.Comment{}, "post_id IN ?", postIDs).Error; err != nil {
				return err
			}
		}

		return tx.Select(clause.Associations).Delete(&user).Error
	})

	if err != nil {
		log.Printf("Failed to delete user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(user))
}
