package Controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/divinebraids/salon-app/controllers"
	"github.com/divinebraids/salon-app/models"
)

func setupGalleryRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	galleryCtrl := controllers.NewGalleryController(db)
	router.GET("/gallery", galleryCtrl.GetGallery)
	router.POST("/gallery", galleryCtrl.UploadImage)
	router.PUT("/gallery/:id", galleryCtrl.UpdateImageOrder)
	router.DELETE("/gallery/:id", galleryCtrl.DeleteImage)
	return router
}

// imageUpload builds a multipart body with one "image" part.
func imageUpload(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return buf, writer.FormDataContentType()
}

func TestUploadAndListGallery(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := openTestDB(t)
	router := setupGalleryRouter(db)

	body, contentType := imageUpload(t, "braids.png", "image/png", []byte("fake png bytes"))
	req, _ := http.NewRequest("POST", "/gallery", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	imagePath := resp["image_path"].(string)
	assert.True(t, strings.HasPrefix(imagePath, "/uploads/gallery-"))
	assert.True(t, strings.HasSuffix(imagePath, ".png"))

	// The file really landed on disk.
	localPath := filepath.Join(controllers.UploadDir(), filepath.Base(imagePath))
	_, err := os.Stat(localPath)
	assert.NoError(t, err)

	req, _ = http.NewRequest("GET", "/gallery", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var images []models.GalleryImage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &images))
	assert.Len(t, images, 1)
	assert.Equal(t, 0, images[0].DisplayOrder)
}

func TestUploadRejectsNonImage(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := openTestDB(t)
	router := setupGalleryRouter(db)

	body, contentType := imageUpload(t, "notes.txt", "text/plain", []byte("not an image"))
	req, _ := http.NewRequest("POST", "/gallery", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.GalleryImage{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUploadRejectsOversizedImage(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := openTestDB(t)
	router := setupGalleryRouter(db)

	oversized := bytes.Repeat([]byte("a"), 5<<20+1)
	body, contentType := imageUpload(t, "huge.jpg", "image/jpeg", oversized)
	req, _ := http.NewRequest("POST", "/gallery", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRequiresFile(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := openTestDB(t)
	router := setupGalleryRouter(db)

	req, _ := http.NewRequest("POST", "/gallery", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReorderGalleryImage(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := openTestDB(t)
	router := setupGalleryRouter(db)

	db.Create(&models.GalleryImage{ImagePath: "/uploads/gallery-1.png"})

	payload, _ := json.Marshal(map[string]interface{}{"display_order": 3})
	req, _ := http.NewRequest("PUT", "/gallery/1", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var image models.GalleryImage
	assert.NoError(t, db.First(&image, 1).Error)
	assert.Equal(t, 3, image.DisplayOrder)
}

func TestDeleteGalleryImage(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := openTestDB(t)
	router := setupGalleryRouter(db)

	// Upload for real so there is a file to remove.
	body, contentType := imageUpload(t, "braids.jpg", "image/jpeg", []byte("fake jpg"))
	req, _ := http.NewRequest("POST", "/gallery", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	localPath := filepath.Join(controllers.UploadDir(), filepath.Base(resp["image_path"].(string)))

	req, _ = http.NewRequest("DELETE", "/gallery/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	_, err := os.Stat(localPath)
	assert.True(t, os.IsNotExist(err))

	var count int64
	db.Model(&models.GalleryImage{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteGalleryImageNotFound(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := openTestDB(t)
	router := setupGalleryRouter(db)

	req, _ := http.NewRequest("DELETE", "/gallery/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
