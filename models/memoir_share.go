package models

import (
	"time"
	"tripbook/utils"
)

type MemoirShare struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"not null"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TripID    uint64 `gorm:"not null"`
	Trip      Trip   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Token     string `gorm:"type:varchar(100);index:uniq_token,unique"`
	ExpiresAt int64  `gorm:"not null"` // 0 indicates no expiration
}

func NewMemoirShare(userID, tripID uint64, expires int64) MemoirShare {
	expiresAt := int64(0)
	if expires > 0 {
		expiresAt = time.Now().Unix() + expires
	}
	return MemoirShare{
		UserID:    userID,
		TripID:    tripID,
		Token:     utils.Rand16BytesToBase62(),
		ExpiresAt: expiresAt,
	}
}
