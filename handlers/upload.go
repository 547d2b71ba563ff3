package handlers

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"tripbook/models"
	"tripbook/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func mimeTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// saveUpload stores one uploaded image in the given bucket location under a
// random object name and returns its public URL and storage path. The local
// copy is released once the remote (if any) is up to date.
func saveUpload(stor storage.StorageAPI, location string, header *multipart.FileHeader) (url, path string, err error) {
	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	path = location + "/" + uuid.NewString() + ext
	reader, err := header.Open()
	if err != nil {
		return "", "", err
	}
	defer reader.Close()
	if _, err = stor.Save(path, reader); err != nil {
		return "", "", err
	}
	if err = stor.UpdateRemoteFile(path, mimeTypeForExt(ext)); err != nil {
		stor.Delete(path)
		return "", "", err
	}
	stor.ReleaseLocalFile(path)
	return stor.GetPublicURL(path), path, nil
}

// TripCoverUpload accepts a single "file" form part and returns the URL of
// the stored image. It does not modify the trip; the client follows up with
// a trip save.
func TripCoverUpload(c *gin.Context, user *models.User) {
	r := TripIDRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	trip := loadTripForEdit(c, r.TripID, user.ID)
	if trip == nil {
		return
	}
	stor := storage.GetDefaultStorage()
	if stor == nil {
		c.JSON(http.StatusInternalServerError, NoStorageResponse)
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	url, _, err := saveUpload(stor, storage.StorageLocationCovers, header)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "url": url})
}
