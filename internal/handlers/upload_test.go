package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func fileHeader(filename, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: filename,
		Header:   h,
		Size:     size,
	}
}

func TestValidatePackFile_AllowsArchive(t *testing.T) {
	assert.NoError(t, validatePackFile(fileHeader("bundle.zip", "application/zip", 1024)))
	assert.NoError(t, validatePackFile(fileHeader("guide.PDF", "application/pdf", 1024)))
}

func TestValidatePackFile_RejectsOversize(t *testing.T) {
	err := validatePackFile(fileHeader("bundle.zip", "application/zip", maxUploadSize+1))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "50 MB")
}

func TestValidatePackFile_RejectsExtension(t *testing.T) {
	assert.Error(t, validatePackFile(fileHeader("payload.exe", "application/octet-stream", 1024)))
	assert.Error(t, validatePackFile(fileHeader("noext", "application/zip", 1024)))
}

func TestValidateImageFile_AllowsImageTypes(t *testing.T) {
	assert.NoError(t, validateImageFile(fileHeader("a.png", "image/png", 1024)))
	assert.NoError(t, validateImageFile(fileHeader("b.webp", "image/webp", 1024)))
}

func TestValidateImageFile_RejectsNonImage(t *testing.T) {
	assert.Error(t, validateImageFile(fileHeader("a.png", "text/plain", 1024)))
	assert.Error(t, validateImageFile(fileHeader("a.png", "", 1024)))
}

func TestValidateImageFile_RejectsOversize(t *testing.T) {
	assert.Error(t, validateImageFile(fileHeader("a.png", "image/png", maxUploadSize+1)))
}

func uploadRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/upload-pack-file", UploadPackFile)
	return r
}

func multipartUpload(r *gin.Engine, filename string, content []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", filename)
	part.Write(content)
	mw.WriteField("packId", "pack_test")
	mw.Close()

	req, _ := http.NewRequest("POST", "/api/upload-pack-file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadPackFile_NoFile(t *testing.T) {
	SetupTestDB()

	w := performJSON(uploadRouter(), "POST", "/api/upload-pack-file", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file provided", decodeBody(w)["error"])
}

func TestUploadPackFile_RejectsDisallowedType(t *testing.T) {
	SetupTestDB()

	// Fails validation before storage is ever consulted
	w := multipartUpload(uploadRouter(), "malware.exe", []byte("MZ"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadPackFile_StorageNotConfigured(t *testing.T) {
	SetupTestDB()

	// A valid file with no R2 credentials must answer 503, not 500
	w := multipartUpload(uploadRouter(), "bundle.zip", []byte("PK"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Storage not configured", decodeBody(w)["error"])
}
