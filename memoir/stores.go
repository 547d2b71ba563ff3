package memoir

import (
	"errors"
	"tripbook/db"
	"tripbook/models"

	"gorm.io/gorm"
)

// ItemStore provides the itinerary data the pipeline reads. Narrow on
// purpose so the pipeline can be exercised against fakes.
type ItemStore interface {
	// ForTrip returns all items of a trip ordered by day index, then start
	// time with unscheduled items last.
	ForTrip(tripID uint64) ([]models.ItineraryItem, error)
	// GalleryForItems returns gallery photos for the whole item set in one
	// bulk lookup.
	GalleryForItems(itemIDs []uint64) ([]models.ItemPhoto, error)
}

// MemoirStore persists the memoir record of a trip.
type MemoirStore interface {
	// ForTrip returns nil (no error) when the trip has no memoir yet
	ForTrip(tripID uint64) (*models.Memoir, error)
	Create(m *models.Memoir) error
	// Replace atomically overwrites title and photo list in one update
	Replace(memoirID uint64, title string, photos models.PhotoList) error
}

type GormItemStore struct{}

func (GormItemStore) ForTrip(tripID uint64) ([]models.ItineraryItem, error) {
	items := []models.ItineraryItem{}
	err := db.Instance.
		Where("trip_id = ?", tripID).
		Order("day_index, start_time is null, start_time").
		Find(&items).Error
	return items, err
}

func (GormItemStore) GalleryForItems(itemIDs []uint64) ([]models.ItemPhoto, error) {
	photos := []models.ItemPhoto{}
	if len(itemIDs) == 0 {
		return photos, nil
	}
	err := db.Instance.
		Where("item_id in ?", itemIDs).
		Order("id").
		Find(&photos).Error
	return photos, err
}

type GormMemoirStore struct{}

func (GormMemoirStore) ForTrip(tripID uint64) (*models.Memoir, error) {
	m := models.Memoir{}
	result := db.Instance.First(&m, "trip_id = ?", tripID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &m, nil
}

func (GormMemoirStore) Create(m *models.Memoir) error {
	return db.Instance.Create(m).Error
}

func (GormMemoirStore) Replace(memoirID uint64, title string, photos models.PhotoList) error {
	return db.Instance.Model(&models.Memoir{}).
		Where("id = ?", memoirID).
		Updates(map[string]interface{}{"title": title, "photos": photos}).Error
}
