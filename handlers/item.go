package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"tripbook/config"
	"tripbook/db"
	"tripbook/models"
	"tripbook/storage"
	"tripbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ItemCreateRequest struct {
	TripID      uint64  `form:"trip_id" binding:"required"`
	DayIndex    int     `form:"day_index"`
	Type        string  `form:"type" binding:"required"`
	Title       string  `form:"title" binding:"required"`
	StartTime   *string `form:"start_time"`
	EndTime     *string `form:"end_time"`
	Location    string  `form:"location"`
	Address     string  `form:"address"`
	Description string  `form:"description"`
	ImageURL    string  `form:"image_url"`
	CostAmount  float64 `form:"cost_amount"`
}

type ItemSaveRequest struct {
	ID uint64 `form:"id" binding:"required"`
	ItemCreateRequest
}

type ItemIDRequest struct {
	ID uint64 `form:"id" binding:"required"`
}

type ItemPhotoInfo struct {
	ID  uint64 `json:"id"`
	URL string `json:"url"`
}

type ItemInfo struct {
	ID          uint64          `json:"id"`
	DayIndex    int             `json:"day_index"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	StartTime   *string         `json:"start_time"`
	EndTime     *string         `json:"end_time"`
	Location    string          `json:"location"`
	Address     string          `json:"address"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	CostAmount  float64         `json:"cost_amount"`
	Photos      []ItemPhotoInfo `json:"photos"`
}

func validItemType(t string) bool {
	switch t {
	case models.ItemTypeActivity, models.ItemTypeTransport, models.ItemTypeFood, models.ItemTypeLodging:
		return true
	}
	return false
}

func itemInfo(item *models.ItineraryItem, photos []ItemPhotoInfo) ItemInfo {
	if photos == nil {
		photos = []ItemPhotoInfo{}
	}
	return ItemInfo{
		ID:          item.ID,
		DayIndex:    item.DayIndex,
		Type:        item.Type,
		Title:       item.Title,
		StartTime:   item.StartTime,
		EndTime:     item.EndTime,
		Location:    item.LocationName,
		Address:     item.Address,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		CostAmount:  item.CostAmount,
		Photos:      photos,
	}
}

// loadItem fetches an item and checks the user can edit its trip
func loadItem(c *gin.Context, itemID, userID uint64) *models.ItineraryItem {
	item := models.ItineraryItem{}
	if err := db.Instance.First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return nil
	}
	if loadTripForEdit(c, item.TripID, userID) == nil {
		return nil
	}
	return &item
}

// ItemList returns the trip's items in schedule order, gallery photos included
func ItemList(c *gin.Context, user *models.User) {
	r := TripIDRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if loadTripForView(c, r.TripID, user.ID) == nil {
		return
	}
	items := []models.ItineraryItem{}
	err := db.Instance.
		Where("trip_id = ?", r.TripID).
		Order("day_index, start_time is null, start_time").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	itemIDs := make([]uint64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}
	photosByItem := map[uint64][]ItemPhotoInfo{}
	if len(itemIDs) > 0 {
		photos := []models.ItemPhoto{}
		if err = db.Instance.Where("item_id in ?", itemIDs).Order("created_at").Find(&photos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, DBError2Response)
			return
		}
		for _, photo := range photos {
			photosByItem[photo.ItemID] = append(photosByItem[photo.ItemID], ItemPhotoInfo{ID: photo.ID, URL: photo.URL})
		}
	}
	result := []ItemInfo{}
	for i := range items {
		result = append(result, itemInfo(&items[i], photosByItem[items[i].ID]))
	}
	c.JSON(http.StatusOK, result)
}

func ItemCreate(c *gin.Context, user *models.User) {
	r := ItemCreateRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if !validItemType(r.Type) {
		c.JSON(http.StatusBadRequest, Response{"unknown item type"})
		return
	}
	if loadTripForEdit(c, r.TripID, user.ID) == nil {
		return
	}
	item := models.ItineraryItem{
		TripID:       r.TripID,
		DayIndex:     r.DayIndex,
		Type:         r.Type,
		Title:        strings.TrimSpace(r.Title),
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		LocationName: r.Location,
		Address:      r.Address,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		CostAmount:   r.CostAmount,
	}
	if err = db.Instance.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, itemInfo(&item, nil))
}

func ItemSave(c *gin.Context, user *models.User) {
	r := ItemSaveRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if !validItemType(r.Type) {
		c.JSON(http.StatusBadRequest, Response{"unknown item type"})
		return
	}
	item := loadItem(c, r.ID, user.ID)
	if item == nil {
		return
	}
	item.DayIndex = r.DayIndex
	item.Type = r.Type
	item.Title = strings.TrimSpace(r.Title)
	item.StartTime = r.StartTime
	item.EndTime = r.EndTime
	item.LocationName = r.Location
	item.Address = r.Address
	item.Description = r.Description
	item.ImageURL = r.ImageURL
	item.CostAmount = r.CostAmount
	if err = db.Instance.Save(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func ItemDelete(c *gin.Context, user *models.User) {
	r := ItemIDRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	item := loadItem(c, r.ID, user.ID)
	if item == nil {
		return
	}
	if err = db.Instance.Where("item_id = ?", item.ID).Delete(&models.ItemPhoto{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	if err = db.Instance.Delete(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

// ItemPhotoUpload adds one gallery photo to an item. A thumbnail is stored
// alongside the full image for collage rendering.
func ItemPhotoUpload(c *gin.Context, user *models.User) {
	r := ItemIDRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	item := loadItem(c, r.ID, user.ID)
	if item == nil {
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
	url, path, err := saveUpload(stor, storage.StorageLocationGallery, header)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	thumbPath := createGalleryThumb(stor, path, header)
	photo := models.ItemPhoto{
		ItemID:    item.ID,
		URL:       url,
		ThumbPath: thumbPath,
	}
	if err = db.Instance.Create(&photo).Error; err != nil {
		stor.Delete(path)
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, ItemPhotoInfo{ID: photo.ID, URL: photo.URL})
}

// createGalleryThumb is best-effort; a memoir can always fall back to
// fetching and scaling the full image
func createGalleryThumb(stor storage.StorageAPI, path string, header *multipart.FileHeader) string {
	reader, err := header.Open()
	if err != nil {
		return ""
	}
	defer reader.Close()
	var buf bytes.Buffer
	if _, err = utils.CreateThumb(uint(config.THUMB_SIZE), reader, &buf); err != nil {
		return ""
	}
	thumbPath := strings.TrimSuffix(path, filepath.Ext(path)) + "_thumb.jpg"
	if _, err = stor.Save(thumbPath, &buf); err != nil {
		return ""
	}
	if err = stor.UpdateRemoteFile(thumbPath, "image/jpeg"); err != nil {
		stor.Delete(thumbPath)
		return ""
	}
	stor.ReleaseLocalFile(thumbPath)
	return thumbPath
}

func ItemPhotoDelete(c *gin.Context, user *models.User) {
	r := ItemIDRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	photo := models.ItemPhoto{}
	if err = db.Instance.First(&photo, r.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if loadItem(c, photo.ItemID, user.ID) == nil {
		return
	}
	if err = db.Instance.Delete(&photo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
