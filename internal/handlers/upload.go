package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sacknest/sacknest-backend/internal/services"
	"github.com/sacknest/sacknest-backend/pkg/logger"
)

// Uploads above this size are rejected before touching storage.
const maxUploadSize = 50 << 20 // 50 MB

// Archive and document formats allowed for pack files
var packFileExts = map[string]bool{
	".zip": true, ".rar": true, ".7z": true, ".tar": true, ".gz": true,
	".pdf": true, ".doc": true, ".docx": true, ".txt": true, ".md": true,
}

// Image formats allowed for trending images
var imageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

func validatePackFile(header *multipart.FileHeader) error {
	if header.Size > maxUploadSize {
		return fmt.Errorf("file exceeds the 50 MB limit")
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !packFileExts[ext] {
		return fmt.Errorf("file type %s not allowed for packs", ext)
	}
	return nil
}

func validateImageFile(header *multipart.FileHeader) error {
	if header.Size > maxUploadSize {
		return fmt.Errorf("file exceeds the 50 MB limit")
	}
	if !imageContentTypes[header.Header.Get("Content-Type")] {
		return fmt.Errorf("only image uploads are allowed")
	}
	return nil
}

// UploadPackFile stores a premium pack archive and returns its public URL.
// The pack row itself is updated separately through the pack CRUD routes.
func UploadPackFile(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	if err := validatePackFile(header); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	packID := c.Request.FormValue("packId")
	if packID == "" {
		packID = "pack"
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	fileName := fmt.Sprintf("%s_%d%s", packID, time.Now().UnixMilli(), ext)
	key := "packs/" + fileName

	storage, err := services.NewStorage(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage not configured"})
		return
	}

	fileURL, err := storage.Upload(c.Request.Context(), key, header.Header.Get("Content-Type"), file)
	if err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Pack file upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "message": err.Error()})
		return
	}

	logger.Info().Str("key", key).Int64("size", header.Size).Msg("Pack file uploaded")

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"fileUrl":  fileURL,
		"fileName": fileName,
		"filePath": key,
	})
}
