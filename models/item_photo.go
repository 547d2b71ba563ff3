package models

// ItemPhoto is a gallery photo attached to an itinerary item, independent
// from the item's single cover image.
type ItemPhoto struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	ItemID    uint64        `gorm:"not null;index"`
	Item      ItineraryItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	URL       string        `gorm:"type:varchar(500)"`
	ThumbPath string        `gorm:"type:varchar(300)"`
}
