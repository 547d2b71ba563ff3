package models

// TripNote is the single shared free-text note of a trip, updated in place.
type TripNote struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	TripID    uint64 `gorm:"not null;index:uniq_note_trip,unique"`
	Trip      Trip   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Content   string `gorm:"type:text"`
}
