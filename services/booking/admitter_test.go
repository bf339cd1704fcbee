package booking

import (
	"context"
	"errors"
	"testing"

	"medbook/database/store"
	"medbook/models"
)

func newAdmitter(f *fakeStore) *ReservationAdmitter {
	oracle := newOracle(f)
	return &ReservationAdmitter{Store: f, Oracle: oracle}
}

func TestAdmitAppendsUpToCapacity(t *testing.T) {
	f := newFakeStore()
	f.fill("2025-01-05", "09:30-10:30", 9)
	admitter := newAdmitter(f)

	if err := admitter.Admit(context.Background(), record("2025-01-05", "09:30-10:30")); err != nil {
		t.Fatalf("10th admission rejected: %v", err)
	}
	if got := CountOccupancy(recordsOf(f), "2025-01-05", "09:30-10:30"); got != 10 {
		t.Fatalf("occupancy after admit = %d, want 10", got)
	}

	err := admitter.Admit(context.Background(), record("2025-01-05", "09:30-10:30"))
	var full *SlotFullError
	if !errors.As(err, &full) {
		t.Fatalf("11th admission error = %v, want *SlotFullError", err)
	}
	if got := CountOccupancy(recordsOf(f), "2025-01-05", "09:30-10:30"); got != 10 {
		t.Fatalf("rejected admission mutated the store: occupancy = %d", got)
	}
}

func TestAdmitNormalizesLegacyDate(t *testing.T) {
	f := newFakeStore()
	admitter := newAdmitter(f)

	if err := admitter.Admit(context.Background(), record("05/01/2025", "09:30-10:30")); err != nil {
		t.Fatalf("Admit: %v", err)
	}
	if got := CountOccupancy(recordsOf(f), "2025-01-05", "09:30-10:30"); got != 1 {
		t.Fatalf("stored row does not count under the canonical date, occupancy = %d", got)
	}
}

func TestAdmitValidationShortCircuits(t *testing.T) {
	f := newFakeStore()
	admitter := newAdmitter(f)

	rec := record("2025-01-05", "09:30-10:30")
	rec.Phone = ""
	err := admitter.Admit(context.Background(), rec)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Admit error = %v, want *ValidationError", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "phone" {
		t.Errorf("ValidationError.Fields = %v, want [phone]", verr.Fields)
	}
	if f.reads != 0 || f.appends != 0 {
		t.Errorf("validation failure touched the store: %d reads, %d appends", f.reads, f.appends)
	}
}

func TestAdmitRejectsUnknownSlotLabel(t *testing.T) {
	f := newFakeStore()
	admitter := newAdmitter(f)

	err := admitter.Admit(context.Background(), record("2025-01-05", "12:00-13:00"))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Admit error = %v, want *ValidationError", err)
	}
	if f.appends != 0 {
		t.Error("unknown slot label reached the store")
	}
}

func TestAdmitPropagatesAppendFailure(t *testing.T) {
	f := newFakeStore()
	f.appendErr = errors.New("insufficient permissions")
	admitter := newAdmitter(f)

	err := admitter.Admit(context.Background(), record("2025-01-05", "09:30-10:30"))
	var serr *StoreError
	if !errors.As(err, &serr) {
		t.Fatalf("Admit error = %v, want *StoreError", err)
	}
	if serr.Op != "append" {
		t.Errorf("StoreError.Op = %q, want append", serr.Op)
	}
}

// The store has no compare-and-append, so two admissions racing at occupancy
// capacity-1 can both observe room and both land. This documents that the
// overshoot is the known behavior of the current design, not a regression;
// it only goes away if the row store grows a conditional append.
func TestStaleReadsCanOvershootCapacity(t *testing.T) {
	f := newFakeStore()
	f.fill("2025-01-05", "09:30-10:30", 9)
	f.gated = true // appends stay invisible to reads until flush
	admitter := newAdmitter(f)

	if err := admitter.Admit(context.Background(), record("2025-01-05", "09:30-10:30")); err != nil {
		t.Fatalf("first racer rejected: %v", err)
	}
	if err := admitter.Admit(context.Background(), record("2025-01-05", "09:30-10:30")); err != nil {
		t.Fatalf("second racer rejected: %v", err)
	}

	f.flush()
	f.gated = false
	if got := CountOccupancy(recordsOf(f), "2025-01-05", "09:30-10:30"); got != 11 {
		t.Fatalf("occupancy after race = %d, want 11 (capacity overshoot by one)", got)
	}
}

func recordsOf(f *fakeStore) []models.ReservationRecord {
	rows, err := f.ReadRange(context.Background(), store.ReservationReadRange)
	if err != nil {
		panic(err)
	}
	return store.RecordsFromRows(rows)
}
