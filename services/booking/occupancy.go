package booking

import (
	"strings"

	"medbook/models"
)

// CountOccupancy tallies the records landing on (date, slot). Stored dates
// are normalized before comparison; stored slot labels are trimmed and must
// equal the requested label exactly. Rows whose date fails to normalize can
// never match and are skipped.
func CountOccupancy(records []models.ReservationRecord, date, slot string) int {
	count := 0
	for _, rec := range records {
		d, ok := NormalizeDate(rec.Date)
		if !ok || d == "" || d != date {
			continue
		}
		if strings.TrimSpace(rec.TimeSlot) == slot {
			count++
		}
	}
	return count
}

// CountAll tallies occupancy for every catalog slot on one date in a single
// pass. Records carrying a slot label outside the catalog are excluded
// entirely; every catalog slot appears in the result even at zero.
func (c SlotCatalog) CountAll(records []models.ReservationRecord, date string) map[string]int {
	counts := make(map[string]int, len(c.labels))
	for _, label := range c.labels {
		counts[label] = 0
	}
	for _, rec := range records {
		d, ok := NormalizeDate(rec.Date)
		if !ok || d == "" || d != date {
			continue
		}
		label := strings.TrimSpace(rec.TimeSlot)
		if _, known := counts[label]; known {
			counts[label]++
		}
	}
	return counts
}
