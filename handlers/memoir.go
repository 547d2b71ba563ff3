package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"tripbook/db"
	"tripbook/export"
	"tripbook/memoir"
	"tripbook/models"
	"tripbook/storage"
	"tripbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type MemoirSaveRequest struct {
	MemoirID uint64           `json:"memoir_id" binding:"required"`
	Title    string           `json:"title" binding:"required"`
	Photos   models.PhotoList `json:"photos"`
}

type MemoirShareRequest struct {
	TripID  uint64 `form:"trip_id" binding:"required"`
	Expires int64  `form:"expires"` // seconds from now, 0 for no expiration
}

// MemoirGet loads (or lazily creates) the trip's memoir and returns it with
// the recomputed daily journals
func MemoirGet(c *gin.Context, user *models.User) {
	r := TripIDRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	trip := loadTripForView(c, r.TripID, user.ID)
	if trip == nil {
		return
	}
	view, err := memoir.NewAssembler().Load(trip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"error":    "",
		"memoir":   view.Memoir,
		"photos":   view.Photos,
		"journals": view.Journals,
		"repaired": view.Repaired,
	})
}

// MemoirRegenerate rebuilds photos and journals from the current itinerary.
// The result replaces unsaved edits on the client but nothing is persisted.
func MemoirRegenerate(c *gin.Context, user *models.User) {
	r := TripIDRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	trip := loadTripForEdit(c, r.TripID, user.ID)
	if trip == nil {
		return
	}
	photos, journals, err := memoir.NewAssembler().Regenerate(trip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"error":    "",
		"photos":   photos,
		"journals": journals,
	})
}

// MemoirSave replaces the memoir's title and whole photo list in one call
func MemoirSave(c *gin.Context, user *models.User) {
	r := MemoirSaveRequest{}
	err := c.ShouldBindWith(&r, binding.JSON)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	record := models.Memoir{}
	if err = db.Instance.First(&record, r.MemoirID).Error; err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if loadTripForEdit(c, record.TripID, user.ID) == nil {
		return
	}
	if err = memoir.NewAssembler().Save(r.MemoirID, r.Title, r.Photos); err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

// MemoirPhotoUpload stores one or more extra photos for the memoir collage
// and returns their URLs. Files that cannot be stored are reported back but
// do not fail the whole batch.
func MemoirPhotoUpload(c *gin.Context, user *models.User) {
	r := TripIDRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if loadTripForEdit(c, r.TripID, user.ID) == nil {
		return
	}
	stor := storage.GetDefaultStorage()
	if stor == nil {
		c.JSON(http.StatusInternalServerError, NoStorageResponse)
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	files := form.File["files[]"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, Response{"no files"})
		return
	}
	urls := []string{}
	failed := []string{}
	for _, header := range files {
		fileURL, _, err := saveUpload(stor, storage.StorageLocationMemoirs, header)
		if err != nil {
			failed = append(failed, header.Filename)
			continue
		}
		urls = append(urls, fileURL)
	}
	c.JSON(http.StatusOK, gin.H{
		"error":  "",
		"urls":   urls,
		"failed": failed,
	})
}

// MemoirExport renders the memoir to a single-page PDF download
func MemoirExport(c *gin.Context, user *models.User) {
	r := TripIDRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	trip := loadTripForView(c, r.TripID, user.ID)
	if trip == nil {
		return
	}
	view, err := memoir.NewAssembler().Load(trip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	doc := export.Document{
		Title:    view.Memoir.Title,
		Subtitle: utils.GetDatesString(trip.StartDate, trip.EndDate),
		Journals: view.Journals,
		Photos:   view.Photos,
	}
	page, err := export.NewRenderer().Render(&doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	fileName := url.PathEscape(trip.Title) + "-memoir.pdf"
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
	if err = export.ToPDF(page, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
	}
}

// MemoirShareCreate issues a public read-only link for the trip's memoir
func MemoirShareCreate(c *gin.Context, user *models.User) {
	r := MemoirShareRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	trip := loadTripForEdit(c, r.TripID, user.ID)
	if trip == nil {
		return
	}
	share := models.NewMemoirShare(user.ID, trip.ID, r.Expires)
	shareCond := share
	shareCond.Token = "" // Token should not be a condition
	if err = db.Instance.Where(shareCond).FirstOrCreate(&share).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"error": "",
		"token": share.Token,
		"path":  "/w/memoir/" + share.Token + "/",
	})
}
