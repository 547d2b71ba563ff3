package handlers

import (
	"net/http"
	"tripbook/db"
	"tripbook/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type NoteSaveRequest struct {
	TripID  uint64 `form:"trip_id" binding:"required"`
	Content string `form:"content"`
}

func NoteGet(c *gin.Context, user *models.User) {
	r := TripIDRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if loadTripForView(c, r.TripID, user.ID) == nil {
		return
	}
	note := models.TripNote{}
	// A trip without a note is an empty note, not an error
	_ = db.Instance.First(&note, "trip_id = ?", r.TripID).Error
	c.JSON(http.StatusOK, gin.H{"error": "", "content": note.Content})
}

// NoteSave updates the trip's single note, creating it on first save
func NoteSave(c *gin.Context, user *models.User) {
	r := NoteSaveRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if loadTripForEdit(c, r.TripID, user.ID) == nil {
		return
	}
	note := models.TripNote{}
	err = db.Instance.First(&note, "trip_id = ?", r.TripID).Error
	if err != nil {
		note = models.TripNote{TripID: r.TripID, Content: r.Content}
		if err = db.Instance.Create(&note).Error; err != nil {
			c.JSON(http.StatusInternalServerError, Response{err.Error()})
			return
		}
		c.JSON(http.StatusOK, OKResponse)
		return
	}
	if err = db.Instance.Model(&note).Update("content", r.Content).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
