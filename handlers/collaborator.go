package handlers

import (
	"net/http"
	"tripbook/db"
	"tripbook/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type CollaboratorAddRequest struct {
	TripID uint64 `form:"trip_id" binding:"required"`
	Email  string `form:"email" binding:"required"`
	Role   uint8  `form:"role"`
}

type CollaboratorRoleRequest struct {
	TripID uint64 `form:"trip_id" binding:"required"`
	UserID uint64 `form:"user_id" binding:"required"`
	Role   uint8  `form:"role"`
}

type CollaboratorInfo struct {
	UserID    uint64 `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	Role      uint8  `json:"role"`
}

func CollaboratorList(c *gin.Context, user *models.User) {
	r := TripIDRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	trip := loadTripForView(c, r.TripID, user.ID)
	if trip == nil {
		return
	}
	rows, err := db.Instance.
		Table("collaborators").
		Select("collaborators.user_id, users.name, users.email, users.avatar_url, collaborators.role").
		Joins("join users on users.id = collaborators.user_id").
		Where("collaborators.trip_id = ?", r.TripID).
		Order("collaborators.created_at").
		Rows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	defer rows.Close()
	result := []CollaboratorInfo{}
	for rows.Next() {
		info := CollaboratorInfo{}
		if err = rows.Scan(&info.UserID, &info.Name, &info.Email, &info.AvatarURL, &info.Role); err != nil {
			c.JSON(http.StatusInternalServerError, DBError2Response)
			return
		}
		result = append(result, info)
	}
	c.JSON(http.StatusOK, result)
}

// CollaboratorAdd invites an existing account by email. Owner-only.
func CollaboratorAdd(c *gin.Context, user *models.User) {
	r := CollaboratorAddRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	trip := loadTrip(c, r.TripID)
	if trip == nil {
		return
	}
	if trip.OwnerID != user.ID {
		c.JSON(http.StatusUnauthorized, NopeResponse)
		return
	}
	invited := models.User{}
	result := db.Instance.First(&invited, "email = ?", r.Email)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, Response{"no account with that email"})
		return
	}
	if invited.ID == user.ID {
		c.JSON(http.StatusBadRequest, NopeResponse)
		return
	}
	collaborator := models.Collaborator{
		TripID: r.TripID,
		UserID: invited.ID,
		Role:   r.Role,
	}
	if err = db.Instance.Create(&collaborator).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, CollaboratorInfo{
		UserID:    invited.ID,
		Name:      invited.Name,
		Email:     invited.Email,
		AvatarURL: invited.AvatarURL,
		Role:      r.Role,
	})
}

// CollaboratorRole changes a collaborator's role. Owner-only.
func CollaboratorRole(c *gin.Context, user *models.User) {
	r := CollaboratorRoleRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	trip := loadTrip(c, r.TripID)
	if trip == nil {
		return
	}
	if trip.OwnerID != user.ID {
		c.JSON(http.StatusUnauthorized, NopeResponse)
		return
	}
	result := db.Instance.Model(&models.Collaborator{}).
		Where("trip_id=? and user_id=?", r.TripID, r.UserID).
		Update("role", r.Role)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

// CollaboratorRemove removes a collaborator; owners can remove anyone,
// collaborators can remove themselves (leave the trip)
func CollaboratorRemove(c *gin.Context, user *models.User) {
	r := CollaboratorRoleRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	trip := loadTrip(c, r.TripID)
	if trip == nil {
		return
	}
	if trip.OwnerID != user.ID && r.UserID != user.ID {
		c.JSON(http.StatusUnauthorized, NopeResponse)
		return
	}
	result := db.Instance.Delete(&models.Collaborator{}, "trip_id=? and user_id=?", r.TripID, r.UserID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
