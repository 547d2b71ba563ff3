package models

const (
	CollaboratorCanEdit  = 0
	CollaboratorViewOnly = 1
)

type Collaborator struct {
	CreatedAt int64
	TripID    uint64 `gorm:"primaryKey"`
	Trip      Trip   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserID    uint64 `gorm:"primaryKey"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Role      uint8  `gorm:"not null;default 0"`
}
