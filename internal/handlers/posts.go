package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/refind-dev/refind/db"
	"github.com/refind-dev/refind/internal/models"
	"github.com/refind-dev/refind/internal/types"
	"gorm.io/gorm"
)

type CreatePostRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Filename    string `json:"filename" binding:"required"`
	Location    string `json:"location" binding:"required"`
}

// UpdatePostRequest covers the four mutable columns; location is fixed
// at creation. Omitted fields keep their pre-update values.
type UpdatePostRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Filename    *string `json:"filename"`
}

func ListPosts(ctx *gin.Context) {
	var posts []models.Post

	if err := db.DB.Find(&posts).Error; err != nil {
		log.Printf("Failed to list posts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.PostResponse, 0, len(posts))

	for _, post := range posts {
		response = append(response, types.NewPostResponse(post))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetPost(ctx *gin.Context) {
	var post models.Post

	err := db.DB.First(&post, "id = ?", ctx.Param("id")).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			log.Printf("Failed to fetch post: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewPostResponse(post))
}

// CreatePost creates a post owned by the user named in the path.
func CreatePost(ctx *gin.Context) {
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

	var body CreatePostRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Body is missing fields"})
		return
	}

	post := models.Post{
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		Filename:    body.Filename,
		Location:    body.Location,
		UserID:      user.ID,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		log.Printf("Failed to create post: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewPostResponse(post))
}

func UpdatePost(ctx *gin.Context) {
	var post models.Post

	err := db.DB.First(&post, "id = ?", ctx.Param("id")).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			log.Printf("Failed to fetch post: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var body UpdatePostRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if body.Title != nil {
		post.Title = *body.Title
	}
	if body.Description != nil {
		post.Description = *body.Description
	}
	if body.Category != nil {
		post.Category = *body.Category
	}
	if body.Filename != nil {
		post.Filename = *body.Filename
	}

	if err := db.DB.Save(&post).Error; err != nil {
		log.Printf("Failed to update post: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Re-read so the response reflects exactly what the store holds.
	if err := db.DB.First(&post, post.ID).Error; err != nil {
		log.Printf("Failed to refresh post: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewPostResponse(post))
}

// DeletePost removes a post together with its comments.
func DeletePost(ctx *gin.Context) {
	var post models.Post

	err := db.DB.First(&post, "id = ?", ctx.Param("id")).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			log.Printf("Failed to fetch post: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := db.DB.Select("Comments").Delete(&post).Error; err != nil {
		log.Printf("Failed to delete post: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewPostResponse(post))
}
