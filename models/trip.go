package models

import (
	"time"
	"tripbook/db"
)

type Trip struct {
	ID            uint64 `gorm:"primaryKey"`
	CreatedAt     int64  `gorm:"index:owner_trip_created,priority:2"`
	UpdatedAt     int64
	OwnerID       uint64    `gorm:"not null;index:owner_trip_created,priority:1"`
	Owner         User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Title         string    `gorm:"type:varchar(300)"`
	StartDate     time.Time `gorm:"type:date"`
	EndDate       time.Time `gorm:"type:date"`
	CoverImage    string    `gorm:"type:varchar(500)"`
	CoverPosition string    `gorm:"type:varchar(30)"`
	CoverDisplay  string    `gorm:"type:varchar(30)"`
	Collaborators []Collaborator
}

// CanView reports whether the user owns the trip or collaborates in any role
func (t *Trip) CanView(userID uint64) bool {
	if t.OwnerID == userID {
		return true
	}
	var count int64
	db.Instance.Raw("select count(1) from collaborators where trip_id=? and user_id=?", t.ID, userID).Scan(&count)
	return count == 1
}

// CanEdit reports whether the user owns the trip or is an editor collaborator
func (t *Trip) CanEdit(userID uint64) bool {
	if t.OwnerID == userID {
		return true
	}
	var count int64
	db.Instance.Raw("select count(1) from collaborators where trip_id=? and user_id=? and role=?", t.ID, userID, CollaboratorCanEdit).Scan(&count)
	return count == 1
}

// RoleName returns "owner", "editor", "viewer" or "" for the given user
func (t *Trip) RoleName(userID uint64) string {
	if t.OwnerID == userID {
		return "owner"
	}
	collaborator := Collaborator{}
	result := db.Instance.First(&collaborator, "trip_id=? and user_id=?", t.ID, userID)
	if result.Error != nil {
		return ""
	}
	if collaborator.Role == CollaboratorCanEdit {
		return "editor"
	}
	return "viewer"
}
