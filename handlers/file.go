package handlers

import (
	"net/http"
	"strings"
	"tripbook/storage"

	"github.com/gin-gonic/gin"
)

// FileFetch serves uploaded images from the default disk bucket. Only the
// standard upload locations are reachable.
func FileFetch(c *gin.Context) {
	path := c.Param("path")
	if strings.Contains(path, "..") {
		c.JSON(http.StatusBadRequest, NopeResponse)
		return
	}
	allowed := false
	for _, location := range []string{storage.StorageLocationCovers, storage.StorageLocationGallery, storage.StorageLocationMemoirs} {
		if strings.HasPrefix(path, location+"/") {
			allowed = true
			break
		}
	}
	if !allowed {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	stor := storage.GetDefaultStorage()
	if stor == nil {
		c.JSON(http.StatusInternalServerError, NoStorageResponse)
		return
	}
	if stor.GetSize(path) <= 0 {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	stor.Serve(path, c.Request, c.Writer)
}
