package handlers

import (
	"net/http"
	"tripbook/auth"
	"tripbook/db"
	"tripbook/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type UserCreateRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}
type UserLoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}
type UserSaveRequest struct {
	Name     string `form:"name"`
	Password string `form:"password"`
}
type UserInfo struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

func UserLogin(c *gin.Context) {
	postReq := UserLoginRequest{}
	err := c.ShouldBindWith(&postReq, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	user, err := models.UserLogin(postReq.Email, postReq.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, Response{err.Error()})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(&user)
	c.JSON(http.StatusOK, gin.H{"error": "", "name": user.Name, "permissions": user.GetPermissions()})
}

func UserSignup(c *gin.Context) {
	postReq := UserCreateRequest{}
	err := c.ShouldBindWith(&postReq, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	user, err := models.UserCreate(postReq.Name, postReq.Email, postReq.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(&user)
	c.JSON(http.StatusOK, gin.H{"error": "", "name": user.Name})
}

func UserLogout(c *gin.Context, user *models.User) {
	auth.LoadSession(c).LogoutUser()
	c.JSON(http.StatusOK, OKResponse)
}

func UserGetStatus(c *gin.Context, user *models.User) {
	c.JSON(http.StatusOK, gin.H{
		"error":       "",
		"name":        user.Name,
		"email":       user.Email,
		"avatar_url":  user.AvatarURL,
		"permissions": user.GetPermissions(),
	})
}

// UserSave updates the current user's own profile
func UserSave(c *gin.Context, user *models.User) {
	postReq := UserSaveRequest{}
	err := c.ShouldBindWith(&postReq, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if postReq.Name != "" {
		user.Name = postReq.Name
	}
	if postReq.Password != "" {
		user.SetPassword(postReq.Password)
	}
	if err = db.Instance.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

// UserList returns the other users that can be invited as collaborators
func UserList(c *gin.Context, user *models.User) {
	rows, err := db.Instance.Table("users").Select("id, name, email, avatar_url").Where("id != ?", user.ID).Order("created_at DESC").Rows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	defer rows.Close()
	result := []UserInfo{}
	for rows.Next() {
		userInfo := UserInfo{}
		if err = rows.Scan(&userInfo.ID, &userInfo.Name, &userInfo.Email, &userInfo.AvatarURL); err != nil {
			c.JSON(http.StatusInternalServerError, DBError2Response)
			return
		}
		result = append(result, userInfo)
	}
	c.JSON(http.StatusOK, result)
}
