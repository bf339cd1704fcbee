package booking

import (
	"context"
	"sync"

	"medbook/database/store"
	"medbook/models"
)

// fakeStore is an in-memory RowStore. With gated set, appended rows stay
// invisible to reads until flush is called, which reproduces the window
// between one admission's capacity check and another's append.
type fakeStore struct {
	mu        sync.Mutex
	rows      [][]string
	pending   [][]string
	gated     bool
	readErr   error
	appendErr error
	reads     int
	appends   int
}

func newFakeStore(records ...models.ReservationRecord) *fakeStore {
	f := &fakeStore{}
	for _, rec := range records {
		f.rows = append(f.rows, store.RowFromRecord(rec))
	}
	return f
}

func (f *fakeStore) ReadRange(ctx context.Context, rangeSpec string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := make([][]string, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeStore) AppendRow(ctx context.Context, rangeSpec string, row []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appends++
	if f.appendErr != nil {
		return f.appendErr
	}
	if f.gated {
		f.pending = append(f.pending, row)
		return nil
	}
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeStore) flush() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, f.pending...)
	f.pending = nil
}

// fill appends n identical records for (date, slot) directly, bypassing
// admission.
func (f *fakeStore) fill(date, slot string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i < n; i++ {
		f.rows = append(f.rows, store.RowFromRecord(record(date, slot)))
	}
}
