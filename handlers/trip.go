package handlers

import (
	"net/http"
	"time"
	"tripbook/db"
	"tripbook/models"
	"tripbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type TripInfo struct {
	ID         uint64 `json:"id"`
	Owner      uint64 `json:"owner"`
	Title      string `json:"title"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Subtitle   string `json:"subtitle"`
	CoverImage string `json:"cover_image"`
	Role       string `json:"role"`
}

type TripCreateRequest struct {
	Title      string `form:"title" binding:"required"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	CoverImage string `form:"cover_image"`
}

type TripSaveRequest struct {
	TripID        uint64 `form:"trip_id" binding:"required"`
	Title         string `form:"title"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	CoverImage    string `form:"cover_image"`
	CoverPosition string `form:"cover_position"`
	CoverDisplay  string `form:"cover_display"`
}

type TripIDRequest struct {
	TripID uint64 `form:"trip_id" binding:"required"`
}

const dateFormat = "2006-01-02"

func parseDate(in string) time.Time {
	d, _ := time.Parse(dateFormat, in)
	return d
}

func formatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateFormat)
}

func tripInfo(trip *models.Trip, role string) TripInfo {
	return TripInfo{
		ID:         trip.ID,
		Owner:      trip.OwnerID,
		Title:      trip.Title,
		StartDate:  formatDate(trip.StartDate),
		EndDate:    formatDate(trip.EndDate),
		Subtitle:   utils.GetDatesString(trip.StartDate, trip.EndDate),
		CoverImage: trip.CoverImage,
		Role:       role,
	}
}

// TripList returns trips the user owns or collaborates on
func TripList(c *gin.Context, user *models.User) {
	trips := []models.Trip{}
	err := db.Instance.
		Joins("left join collaborators on collaborators.trip_id = trips.id and collaborators.user_id = ?", user.ID).
		Where("trips.owner_id = ? OR collaborators.user_id = ?", user.ID, user.ID).
		Group("trips.id").
		Order("trips.created_at DESC").
		Find(&trips).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []TripInfo{}
	for i := range trips {
		role := "owner"
		if trips[i].OwnerID != user.ID {
			role = trips[i].RoleName(user.ID)
		}
		result = append(result, tripInfo(&trips[i], role))
	}
	c.JSON(http.StatusOK, result)
}

func TripCreate(c *gin.Context, user *models.User) {
	r := TripCreateRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	trip := models.Trip{
		OwnerID:    user.ID,
		Title:      r.Title,
		StartDate:  parseDate(r.StartDate),
		EndDate:    parseDate(r.EndDate),
		CoverImage: r.CoverImage,
	}
	result := db.Instance.Create(&trip)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, Response{result.Error.Error()})
		return
	}
	c.JSON(http.StatusOK, tripInfo(&trip, "owner"))
}

func TripGet(c *gin.Context, user *models.User) {
	r := TripIDRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	trip := loadTripForView(c, r.TripID, user.ID)
	if trip == nil {
		return
	}
	info := tripInfo(trip, trip.RoleName(user.ID))
	c.JSON(http.StatusOK, gin.H{
		"error":          "",
		"trip":           info,
		"cover_position": trip.CoverPosition,
		"cover_display":  trip.CoverDisplay,
	})
}

func TripSave(c *gin.Context, user *models.User) {
	r := TripSaveRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	trip := loadTripForEdit(c, r.TripID, user.ID)
	if trip == nil {
		return
	}
	if r.Title != "" {
		trip.Title = r.Title
	}
	if r.StartDate != "" {
		trip.StartDate = parseDate(r.StartDate)
	}
	if r.EndDate != "" {
		trip.EndDate = parseDate(r.EndDate)
	}
	if r.CoverImage != "" {
		trip.CoverImage = r.CoverImage
	}
	if r.CoverPosition != "" {
		trip.CoverPosition = r.CoverPosition
	}
	if r.CoverDisplay != "" {
		trip.CoverDisplay = r.CoverDisplay
	}
	if err = db.Instance.Save(trip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

// TripDelete is owner-only; dependent rows cascade
func TripDelete(c *gin.Context, user *models.User) {
	r := TripIDRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	result := db.Instance.Delete(&models.Trip{}, "id=? and owner_id=?", r.TripID, user.ID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, Response{result.Error.Error()})
		return
	}
	if result.RowsAffected != 1 {
		c.JSON(http.StatusUnauthorized, NopeResponse)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
