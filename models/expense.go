package models

type Expense struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	TripID      uint64 `gorm:"not null;index"`
	Trip        Trip   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Amount      float64
	Description string `gorm:"type:varchar(300)"`
	Category    string `gorm:"type:varchar(50)"`
	PayerID     uint64 `gorm:"not null"`
	Payer       User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
