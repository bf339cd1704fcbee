package booking

import (
	"context"

	"medbook/database/store"
	"medbook/models"
)

// AvailabilityOracle answers occupancy questions for one date. Every call
// re-reads the full reservation range; truth is whatever the table holds at
// call time, never a cached view.
type AvailabilityOracle struct {
	Store   store.RowStore
	Catalog SlotCatalog
}

func (o *AvailabilityOracle) records(ctx context.Context) ([]models.ReservationRecord, error) {
	rows, err := o.Store.ReadRange(ctx, store.ReservationReadRange)
	if err != nil {
		return nil, &StoreError{Op: "read", Err: err}
	}
	return store.RecordsFromRows(rows), nil
}

// CheckOne reports whether slot still has room on date. Date must be
// canonical "YYYY-MM-DD".
func (o *AvailabilityOracle) CheckOne(ctx context.Context, date, slot string) (bool, error) {
	recs, err := o.records(ctx)
	if err != nil {
		return false, err
	}
	return CountOccupancy(recs, date, slot) < o.Catalog.Capacity(), nil
}

// Snapshot computes count and availability for every catalog slot on date.
// Slots with no bookings report zero, available.
func (o *AvailabilityOracle) Snapshot(ctx context.Context, date string) (models.OccupancySnapshot, error) {
	recs, err := o.records(ctx)
	if err != nil {
		return nil, err
	}
	counts := o.Catalog.CountAll(recs, date)
	snap := make(models.OccupancySnapshot, len(counts))
	for label, n := range counts {
		snap[label] = models.SlotStatus{Count: n, Available: n < o.Catalog.Capacity()}
	}
	return snap, nil
}
