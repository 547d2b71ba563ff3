package models

type ChecklistItem struct {
	ID         uint64 `gorm:"primaryKey"`
	CreatedAt  int64
	TripID     uint64 `gorm:"not null;index"`
	Trip       Trip   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Content    string `gorm:"type:varchar(300)"`
	Category   string `gorm:"type:varchar(50)"`
	AssigneeID *uint64
	Assignee   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	IsChecked  bool  `gorm:"not null;default 0"`
}
