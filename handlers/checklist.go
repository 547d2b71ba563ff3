package handlers

import (
	"net/http"
	"tripbook/db"
	"tripbook/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ChecklistCreateRequest struct {
	TripID    uint64   `form:"trip_id" binding:"required"`
	Content   string   `form:"content" binding:"required"`
	Category  string   `form:"category"`
	Assignees []uint64 `form:"assignees[]"`
}

type ChecklistToggleRequest struct {
	ID        uint64 `form:"id" binding:"required"`
	IsChecked bool   `form:"is_checked"`
}

type ChecklistInfo struct {
	ID         uint64  `json:"id"`
	Content    string  `json:"content"`
	Category   string  `json:"category"`
	AssigneeID *uint64 `json:"assignee_id"`
	IsChecked  bool    `json:"is_checked"`
}

func ChecklistList(c *gin.Context, user *models.User) {
	r := TripIDRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if loadTripForView(c, r.TripID, user.ID) == nil {
		return
	}
	items := []models.ChecklistItem{}
	err := db.Instance.Where("trip_id = ?", r.TripID).Order("created_at").Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []ChecklistInfo{}
	for _, item := range items {
		result = append(result, ChecklistInfo{
			ID:         item.ID,
			Content:    item.Content,
			Category:   item.Category,
			AssigneeID: item.AssigneeID,
			IsChecked:  item.IsChecked,
		})
	}
	c.JSON(http.StatusOK, result)
}

// ChecklistCreate creates one entry per assignee, or a single unassigned
// entry when no assignees are given
func ChecklistCreate(c *gin.Context, user *models.User) {
	r := ChecklistCreateRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if loadTripForEdit(c, r.TripID, user.ID) == nil {
		return
	}
	items := []models.ChecklistItem{}
	if len(r.Assignees) == 0 {
		items = append(items, models.ChecklistItem{
			TripID:   r.TripID,
			Content:  r.Content,
			Category: r.Category,
		})
	} else {
		for _, assigneeID := range r.Assignees {
			items = append(items, models.ChecklistItem{
				TripID:     r.TripID,
				Content:    r.Content,
				Category:   r.Category,
				AssigneeID: &assigneeID,
			})
		}
	}
	if err = db.Instance.Create(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	result := []ChecklistInfo{}
	for _, item := range items {
		result = append(result, ChecklistInfo{
			ID:         item.ID,
			Content:    item.Content,
			Category:   item.Category,
			AssigneeID: item.AssigneeID,
		})
	}
	c.JSON(http.StatusOK, result)
}

func ChecklistToggle(c *gin.Context, user *models.User) {
	r := ChecklistToggleRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	item := models.ChecklistItem{}
	if err = db.Instance.First(&item, r.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if loadTripForEdit(c, item.TripID, user.ID) == nil {
		return
	}
	result := db.Instance.Model(&item).Update("is_checked", r.IsChecked)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func ChecklistDelete(c *gin.Context, user *models.User) {
	r := ItemIDRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	item := models.ChecklistItem{}
	if err = db.Instance.First(&item, r.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if loadTripForEdit(c, item.TripID, user.ID) == nil {
		return
	}
	if err = db.Instance.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
