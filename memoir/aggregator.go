package memoir

import (
	"log"
	"tripbook/models"
)

// CollectPhotos builds the unified photo list for a set of itinerary items:
// every item's cover image first (itinerary order, captioned with the item
// title), then all gallery photos fetched in a single bulk lookup. Order is
// reassigned as the dense 0-based position in the concatenated list, so the
// result is stable for a fixed input.
func CollectPhotos(items []models.ItineraryItem, store ItemStore) models.PhotoList {
	photos := models.PhotoList{}
	if len(items) == 0 {
		return photos
	}
	itemIDs := make([]uint64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
		if item.ImageURL == "" {
			continue
		}
		photos = append(photos, models.PhotoEntry{
			URL:     item.ImageURL,
			Caption: item.Title,
			Source:  models.PhotoSourceCover,
			ItemID:  item.ID,
		})
	}
	gallery, err := store.GalleryForItems(itemIDs)
	if err != nil {
		// Degrade to cover-only rather than failing the whole pipeline
		log.Printf("Gallery photo lookup failed for %d items: %v", len(items), err)
		return photos.Reindex()
	}
	for _, photo := range gallery {
		photos = append(photos, models.PhotoEntry{
			URL:    photo.URL,
			Source: models.PhotoSourceGallery,
			ItemID: photo.ItemID,
		})
	}
	return photos.Reindex()
}
