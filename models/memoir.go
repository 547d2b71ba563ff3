package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

const (
	PhotoSourceCover   = "cover"
	PhotoSourceGallery = "gallery"
	PhotoSourceUpload  = "upload"
)

// PhotoEntry is one photo in a memoir's ordered collage.
type PhotoEntry struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
	Order   int    `json:"order"`
	Source  string `json:"source"`
	ItemID  uint64 `json:"itemId,omitempty"`
}

// PhotoList is stored as a single JSON column on the Memoir record, so every
// save rewrites the whole list atomically.
type PhotoList []PhotoEntry

func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		p = PhotoList{}
	}
	b, err := json.Marshal(p)
	return string(b), err
}

func (p *PhotoList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = PhotoList{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return errors.New("unsupported photo list column type")
}

// Reindex rewrites Order as the dense 0-based list position. Deletions leave
// gaps in memory; they are healed here before every persist.
func (p PhotoList) Reindex() PhotoList {
	for i := range p {
		p[i].Order = i
	}
	return p
}

// RemoveAt drops the entry at the given list index without renumbering
func (p PhotoList) RemoveAt(index int) PhotoList {
	if index < 0 || index >= len(p) {
		return p
	}
	return append(p[:index], p[index+1:]...)
}

func (p PhotoList) SetCaption(index int, caption string) bool {
	if index < 0 || index >= len(p) {
		return false
	}
	p[index].Caption = caption
	return true
}

// Memoir is the editable photo-and-narrative document of one trip.
type Memoir struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	TripID    uint64    `gorm:"not null;index:uniq_trip,unique"`
	Trip      Trip      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Title     string    `gorm:"type:varchar(300)"`
	Photos    PhotoList `gorm:"type:json"`
}
