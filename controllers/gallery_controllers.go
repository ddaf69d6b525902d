package controllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/divinebraids/salon-app/models"
	"github.com/divinebraids/salon-app/utils"
)

const maxImageSize = 5 << 20 // 5MB

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type GalleryController struct {
	DB *gorm.DB
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{DB: db}
}

// UploadDir is where gallery files land; served back under /uploads.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return filepath.Join("public", "uploads")
}

// GetGallery is public: the marketing page reads it without a token.
func (gc *GalleryController) GetGallery(c *gin.Context) {
	var images []models.GalleryImage
	if err := gc.DB.Order("display_order ASC, created_at DESC").
		Find(&images).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, images)
}

// UploadImage accepts a single multipart "image" file, max 5MB, image
// types only, and stores it under the upload dir with a generated name.
func (gc *GalleryController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("No image file provided"))
		return
	}

	if file.Size > maxImageSize {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Image must be 5MB or smaller"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if !allowedImageExts[ext] || !strings.HasPrefix(contentType, "image/") {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Only image files are allowed"))
		return
	}

	uploadDir := UploadDir()
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	filename := fmt.Sprintf("gallery-%d-%d%s", time.Now().UnixNano(), rand.Intn(1_000_000_000), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error saving image"))
		return
	}

	image := models.GalleryImage{
		ImagePath: "/uploads/" + filename,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := gc.DB.Create(&image).Error; err != nil {
		// Do not leave an orphaned file on disk.
		os.Remove(filepath.Join(uploadDir, filename))
		utils.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         image.ID,
		"image_path": image.ImagePath,
		"message":    "Image uploaded successfully",
	})
}

// UpdateImageOrder sets the carousel position of one image.
func (gc *GalleryController) UpdateImageOrder(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		DisplayOrder int `json:"display_order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := gc.DB.Model(&models.GalleryImage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"display_order": body.DisplayOrder,
			"updated_at":    time.Now(),
		}).Error
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Image updated successfully")
}

// DeleteImage removes the file from disk, then the row.
func (gc *GalleryController) DeleteImage(c *gin.Context) {
	id := c.Param("id")

	var image models.GalleryImage
	if err := gc.DB.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Image not found"))
			return
		}
		utils.RespondStoreError(c, err)
		return
	}

	localPath := filepath.Join(UploadDir(), filepath.Base(image.ImagePath))
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		utils.ErrorLogger.Printf("Error removing gallery file %s: %v", localPath, err)
	}

	if err := gc.DB.Delete(&image).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Image deleted successfully")
}
