package memoir

import (
	"strings"
	"time"
	"tripbook/models"
)

const (
	freeDayText    = "A free day to relax and enjoy the journey!"
	transitDayText = "Mostly a day of transit and rest today."
)

// DayJournal is derived from the current itinerary on every load and is
// never persisted.
type DayJournal struct {
	DayIndex int                    `json:"day_index"`
	Date     time.Time              `json:"date"`
	Content  string                 `json:"content"`
	Items    []models.ItineraryItem `json:"items"`
}

// Day is the 1-based day number used for display
func (j DayJournal) Day() int {
	return j.DayIndex + 1
}

// Narrative produces one descriptive paragraph for a day's items. Pure
// function: identical input yields identical text.
func Narrative(items []models.ItineraryItem) string {
	if len(items) == 0 {
		return freeDayText
	}
	titles := []string{}
	for _, item := range items {
		if item.Type != models.ItemTypeActivity && item.Type != models.ItemTypeFood {
			continue
		}
		if item.Title == "" {
			continue
		}
		titles = append(titles, item.Title)
	}
	if len(titles) == 0 {
		return transitDayText
	}
	text := "Today we went to " + strings.Join(titles, "、") + "."
	if description := strings.TrimSpace(items[0].Description); description != "" {
		text += " " + description
	}
	return text
}

// TripDayCount derives the number of itinerary days from the trip's date
// range, inclusive of both ends. Zero when either date is missing.
func TripDayCount(trip *models.Trip) int {
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return 0
	}
	days := int(trip.EndDate.Sub(trip.StartDate).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

// BuildJournals partitions items by day index (missing treated as day 0) and
// maps each group to startDate + dayIndex days with the day's synthesized
// narrative. Every day of the trip span gets a journal, so itinerary-free
// days show up with the free-day text. Sorted ascending by day; in-group
// item order is inherited from the input.
func BuildJournals(startDate time.Time, dayCount int, items []models.ItineraryItem) []DayJournal {
	days := map[int][]models.ItineraryItem{}
	for _, item := range items {
		dayIndex := item.DayIndex
		if dayIndex < 0 {
			dayIndex = 0
		}
		days[dayIndex] = append(days[dayIndex], item)
		if dayIndex >= dayCount {
			dayCount = dayIndex + 1
		}
	}
	journals := make([]DayJournal, 0, dayCount)
	for dayIndex := 0; dayIndex < dayCount; dayIndex++ {
		journals = append(journals, DayJournal{
			DayIndex: dayIndex,
			Date:     startDate.AddDate(0, 0, dayIndex),
			Content:  Narrative(days[dayIndex]),
			Items:    days[dayIndex],
		})
	}
	return journals
}
