package models

const (
	ItemTypeActivity  = "activity"
	ItemTypeTransport = "transport"
	ItemTypeFood      = "food"
	ItemTypeLodging   = "lodging"
)

// ItineraryItem is a single scheduled entry within a trip, assigned to a
// zero-based day index relative to the trip start date.
type ItineraryItem struct {
	ID            uint64 `gorm:"primaryKey"`
	CreatedAt     int64
	UpdatedAt     int64
	TripID        uint64  `gorm:"not null;index"`
	Trip          Trip    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	DayIndex      int     `gorm:"not null;default 0"`
	Type          string  `gorm:"type:varchar(20)"`
	Title         string  `gorm:"type:varchar(300)"`
	StartTime     *string `gorm:"type:varchar(5)"` // "15:04", nil when unscheduled
	EndTime       *string `gorm:"type:varchar(5)"`
	LocationName  string  `gorm:"type:varchar(300)"`
	Address       string  `gorm:"type:varchar(500)"`
	Description   string  `gorm:"type:text"`
	ImageURL      string  `gorm:"type:varchar(500)"` // single cover image
	ImagePosition string  `gorm:"type:varchar(30)"`
	ImageDisplay  string  `gorm:"type:varchar(30)"`
	CostAmount    float64
}
