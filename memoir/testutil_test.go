package memoir

import (
	"errors"
	"tripbook/models"
)

type fakeItemStore struct {
	items      []models.ItineraryItem
	gallery    []models.ItemPhoto
	galleryErr error
	// itemIDs passed to GalleryForItems, to verify the bulk lookup
	galleryCalls [][]uint64
}

func (f *fakeItemStore) ForTrip(tripID uint64) ([]models.ItineraryItem, error) {
	return f.items, nil
}

func (f *fakeItemStore) GalleryForItems(itemIDs []uint64) ([]models.ItemPhoto, error) {
	f.galleryCalls = append(f.galleryCalls, itemIDs)
	if f.galleryErr != nil {
		return nil, f.galleryErr
	}
	result := []models.ItemPhoto{}
	wanted := map[uint64]bool{}
	for _, id := range itemIDs {
		wanted[id] = true
	}
	for _, photo := range f.gallery {
		if wanted[photo.ItemID] {
			result = append(result, photo)
		}
	}
	return result, nil
}

type fakeMemoirStore struct {
	record   *models.Memoir
	creates  int
	replaces int
	// what the last Replace persisted
	savedTitle  string
	savedPhotos models.PhotoList
	replaceErr  error
}

func (f *fakeMemoirStore) ForTrip(tripID uint64) (*models.Memoir, error) {
	if f.record == nil {
		return nil, nil
	}
	copied := *f.record
	return &copied, nil
}

func (f *fakeMemoirStore) Create(m *models.Memoir) error {
	f.creates++
	m.ID = 1
	copied := *m
	f.record = &copied
	return nil
}

func (f *fakeMemoirStore) Replace(memoirID uint64, title string, photos models.PhotoList) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaces++
	f.savedTitle = title
	f.savedPhotos = append(models.PhotoList{}, photos...)
	if f.record != nil && f.record.ID == memoirID {
		f.record.Title = title
		f.record.Photos = f.savedPhotos
	}
	return nil
}

var errGalleryDown = errors.New("gallery lookup failed")
