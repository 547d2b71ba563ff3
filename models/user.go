package models

import (
	"errors"
	"tripbook/db"
	"tripbook/storage"
	"tripbook/utils"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Name      string  `gorm:"type:varchar(100)"`
	Email     string  `gorm:"type:varchar(150);index:uniq_email,unique"`
	AvatarURL string  `gorm:"type:varchar(500)"`
	Password  string  `gorm:"type:varchar(128)"`
	PassSalt  string  `gorm:"type:varchar(200)"`
	Grants    []Grant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	BucketID  *uint64
	Bucket    storage.Bucket `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

const saltSize = 60

func UserCreate(name, email, plainTextPassword string) (u User, err error) {
	storage := storage.GetDefaultStorage()

	u.Email = email
	u.Name = name
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
	if storage != nil {
		u.BucketID = &storage.GetBucket().ID
	}
	if err = db.Instance.Create(&u).Error; err != nil {
		return
	}
	// Self-registered accounts can plan trips right away
	err = db.Instance.Create(&Grant{UserID: u.ID, Permission: PermissionTrips}).Error
	return
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

func UserLogin(email, plainTextPassword string) (u User, err error) {
	result := db.Instance.Preload("Grants").First(&u, "email = ?", email)
	if result.Error != nil {
		return User{}, errors.New("invalid login")
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, errors.New("invalid login")
	}
	return u, nil
}

func (u *User) GetPermissions() []int {
	permissions := []int{}
	for _, grant := range u.Grants {
		permissions = append(permissions, int(grant.Permission))
	}
	return permissions
}

func (u *User) HasPermission(required Permission) bool {
	for _, permission := range u.Grants {
		if permission.Permission == required {
			return true
		}
	}
	return false
}

func (u *User) HasPermissions(required []Permission) bool {
	for _, permission := range required {
		if !u.HasPermission(permission) {
			return false
		}
	}
	return true
}
