package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/refind-dev/refind/db"
	"github.com/refind-dev/refind/internal/models"
	"github.com/refind-dev/refind/internal/types"
	"github.com/refind-dev/refind/internal/utils"
	"gorm.io/gorm"
)

// UploadImage stores the multipart "pic" file as a new image row.
func UploadImage(ctx *gin.Context) {
	header, err := ctx.FormFile("pic")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}

	file, err := header.Open()

	if err != nil {
		log.Printf("Failed to open uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)

	if err != nil {
		log.Printf("Failed to read uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	image := models.Image{
		UUID:     uuid.New().String(),
		Name:     utils.SanitizeFilename(header.Filename),
		MimeType: header.Header.Get("Content-Type"),
		Content:  content,
	}

	if err := db.DB.Create(&image).Error; err != nil {
		log.Printf("Failed to store image: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewImageResponse(image))
}

// GetImage streams the stored bytes with the recorded MIME type.
func GetImage(ctx *gin.Context) {
	var image models.Image

	err := db.DB.First(&image, "id = ?", ctx.Param("id")).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		} else {
			log.Printf("Failed to fetch image: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.Data(http.StatusOK, image.MimeType, image.Content)
}
