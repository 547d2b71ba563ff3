package memoir

import (
	"log"
	"tripbook/models"
)

// Assembler orchestrates the memoir load/regenerate/save protocol on top of
// the narrow store interfaces.
type Assembler struct {
	Items   ItemStore
	Memoirs MemoirStore
}

func NewAssembler() *Assembler {
	return &Assembler{Items: GormItemStore{}, Memoirs: GormMemoirStore{}}
}

// View is what the memoir page renders: the persisted record, the working
// photo list and the recomputed daily journals.
type View struct {
	Memoir   models.Memoir    `json:"memoir"`
	Photos   models.PhotoList `json:"photos"`
	Journals []DayJournal     `json:"journals"`
	// Repaired flags that an empty persisted photo list was re-aggregated
	// in memory; the record itself stays untouched until an explicit save.
	Repaired bool `json:"repaired"`
}

// Load runs the memoir load protocol: fetch items, rebuild the daily
// journals, then fetch the persisted memoir. A missing memoir is created
// from the current itinerary; a memoir with an empty photo list is repaired
// in memory only.
func (a *Assembler) Load(trip *models.Trip) (*View, error) {
	items, err := a.Items.ForTrip(trip.ID)
	if err != nil {
		return nil, err
	}
	view := View{
		Journals: BuildJournals(trip.StartDate, TripDayCount(trip), items),
	}
	record, err := a.Memoirs.ForTrip(trip.ID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		created := models.Memoir{
			TripID: trip.ID,
			Title:  trip.Title + " - Travel Memoir",
			Photos: CollectPhotos(items, a.Items),
		}
		if err = a.Memoirs.Create(&created); err != nil {
			return nil, err
		}
		record = &created
	} else if len(record.Photos) == 0 {
		repaired := CollectPhotos(items, a.Items)
		if len(repaired) > 0 {
			log.Printf("Memoir %d has no photos, re-aggregated %d for display", record.ID, len(repaired))
			view.Repaired = true
			view.Memoir = *record
			view.Photos = repaired
			return &view, nil
		}
	}
	view.Memoir = *record
	view.Photos = record.Photos
	return &view, nil
}

// Regenerate re-fetches the itinerary and rebuilds photos and journals from
// scratch. Nothing is persisted; the caller must save explicitly, which is
// what makes the operation destructive for unsaved edits.
func (a *Assembler) Regenerate(trip *models.Trip) (models.PhotoList, []DayJournal, error) {
	items, err := a.Items.ForTrip(trip.ID)
	if err != nil {
		return nil, nil, err
	}
	photos := CollectPhotos(items, a.Items)
	journals := BuildJournals(trip.StartDate, TripDayCount(trip), items)
	return photos, journals, nil
}

// Save persists title and the full photo list as one atomic replace. Order
// gaps left by in-memory deletions are healed here. Last writer wins: there
// is no version check, which is fine for the single-editor usage this is
// built for.
func (a *Assembler) Save(memoirID uint64, title string, photos models.PhotoList) error {
	return a.Memoirs.Replace(memoirID, title, photos.Reindex())
}
