package booking

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"medbook/database/store"
	"medbook/models"
	"medbook/utils"
)

// ReservationAdmitter runs the check-then-commit admission: validate the
// record, re-check availability against the store's current state, append.
//
// Check and append are two separate store calls with nothing serializing the
// window between them; two near-capacity admissions racing each other can
// both observe room and both land, overshooting capacity by at most the
// number of concurrent racers minus one. That window is accepted here and
// bounded by re-checking as late as possible; closing it entirely needs a
// store with conditional append.
type ReservationAdmitter struct {
	Store  store.RowStore
	Oracle *AvailabilityOracle
}

// Admit decides one reservation request. The record's date is normalized
// before checking so legacy-format requests count against the same slot as
// canonical ones; on admit the canonical form is what gets stored.
//
// Error taxonomy: *ValidationError (missing fields, unknown slot, unusable
// date), *SlotFullError (capacity reached, nothing written), *StoreError
// (read or append I/O failure). A nil error means the row is durably
// appended.
func (a *ReservationAdmitter) Admit(ctx context.Context, rec models.ReservationRecord) error {
	logger := utils.GetLogger()

	if missing := missingFields(rec); len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	if !a.Oracle.Catalog.IsKnownSlot(rec.TimeSlot) {
		return &ValidationError{Fields: []string{"timeSlot"}}
	}
	date, ok := NormalizeDate(rec.Date)
	if !ok || date == "" {
		return &ValidationError{Fields: []string{"date"}}
	}
	rec.Date = date

	available, err := a.Oracle.CheckOne(ctx, date, rec.TimeSlot)
	if err != nil {
		return err
	}
	if !available {
		return &SlotFullError{Date: date, Slot: rec.TimeSlot}
	}

	if err := a.Store.AppendRow(ctx, store.ReservationAppendRange, store.RowFromRecord(rec)); err != nil {
		return &StoreError{Op: "append", Err: err}
	}

	logger.Info("reservation admitted",
		zap.String("date", date),
		zap.String("timeSlot", rec.TimeSlot),
		zap.String("department", rec.Department),
	)
	return nil
}

func missingFields(rec models.ReservationRecord) []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"date", rec.Date},
		{"timeSlot", rec.TimeSlot},
		{"department", rec.Department},
		{"name", rec.Name},
		{"phone", rec.Phone},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
