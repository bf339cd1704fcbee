package booking

import (
	"context"
	"testing"

	"medbook/models"
)

type memReceiptStore struct {
	receipts map[string]*models.BookingReceipt
}

func (m *memReceiptStore) Save(ctx context.Context, r *models.BookingReceipt) error {
	if m.receipts == nil {
		m.receipts = make(map[string]*models.BookingReceipt)
	}
	m.receipts[r.Reference] = r
	return nil
}

func (m *memReceiptStore) Get(ctx context.Context, reference string) (*models.BookingReceipt, error) {
	return m.receipts[reference], nil
}

func newService(f *fakeStore, receipts ReceiptStore) *DefaultBookingService {
	oracle := newOracle(f)
	return &DefaultBookingService{
		Oracle:   oracle,
		Admitter: &ReservationAdmitter{Store: f, Oracle: oracle},
		Receipts: receipts,
	}
}

func TestReserveIssuesRetrievableReceipt(t *testing.T) {
	f := newFakeStore()
	svc := newService(f, &memReceiptStore{})

	req := models.BookingRequest{
		Date:       "05/01/2025",
		TimeSlot:   "09:30-10:30",
		Department: "Dermatology",
		Name:       "A Patient",
		Phone:      "0812345678",
	}
	receipt, err := svc.Reserve(context.Background(), req)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if receipt.Reference == "" {
		t.Fatal("receipt has no reference code")
	}
	if receipt.Record.Date != "2025-01-05" {
		t.Errorf("receipt carries date %q, want canonical 2025-01-05", receipt.Record.Date)
	}
	if receipt.Message != ConfirmationMessage {
		t.Errorf("receipt message = %q", receipt.Message)
	}

	got, err := svc.Receipt(context.Background(), receipt.Reference)
	if err != nil {
		t.Fatalf("Receipt: %v", err)
	}
	if got == nil || got.Reference != receipt.Reference {
		t.Fatalf("receipt lookup = %+v, want the saved receipt", got)
	}
}

func TestReceiptWithoutStoreIsNil(t *testing.T) {
	svc := newService(newFakeStore(), nil)
	got, err := svc.Receipt(context.Background(), "whatever")
	if err != nil || got != nil {
		t.Fatalf("Receipt with receipts disabled = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestAvailabilityNormalizesQueryDate(t *testing.T) {
	f := newFakeStore()
	f.fill("2025-01-05", "09:30-10:30", 2)
	svc := newService(f, nil)

	snap, err := svc.Availability(context.Background(), "05/01/2025")
	if err != nil {
		t.Fatalf("Availability: %v", err)
	}
	if snap["09:30-10:30"].Count != 2 {
		t.Errorf("legacy-form query missed stored rows: %+v", snap["09:30-10:30"])
	}
}

func TestAvailabilityRejectsUnparseableDate(t *testing.T) {
	svc := newService(newFakeStore(), nil)
	_, err := svc.Availability(context.Background(), "bad/date")
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("Availability error = %v, want *ValidationError", err)
	}
}
