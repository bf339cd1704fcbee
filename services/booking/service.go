package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medbook/models"
	"medbook/utils"
)

// ConfirmationMessage is the human-readable acknowledgement returned on admit.
const ConfirmationMessage = "Your reservation has been recorded. See you then!"

// ReceiptTTL is how long a confirmation stays retrievable by reference.
const ReceiptTTL = 24 * time.Hour

// Service is the booking surface the handlers talk to.
type Service interface {
	// Availability returns the full-day snapshot for date. The date is
	// normalized before matching, so both canonical and legacy forms work.
	Availability(ctx context.Context, date string) (models.OccupancySnapshot, error)
	// Reserve admits one reservation request and returns its receipt.
	Reserve(ctx context.Context, req models.BookingRequest) (*models.BookingReceipt, error)
	// Receipt looks up a cached confirmation; nil when unknown or expired.
	Receipt(ctx context.Context, reference string) (*models.BookingReceipt, error)
}

// DefaultBookingService wires the oracle and admitter together.
type DefaultBookingService struct {
	Oracle   *AvailabilityOracle
	Admitter *ReservationAdmitter
	Receipts ReceiptStore // optional
}

func (s *DefaultBookingService) Availability(ctx context.Context, date string) (models.OccupancySnapshot, error) {
	canonical, ok := NormalizeDate(date)
	if !ok || canonical == "" {
		return nil, &ValidationError{Fields: []string{"date"}}
	}
	return s.Oracle.Snapshot(ctx, canonical)
}

func (s *DefaultBookingService) Reserve(ctx context.Context, req models.BookingRequest) (*models.BookingReceipt, error) {
	logger := utils.GetLogger()

	rec := req.Record()
	if err := s.Admitter.Admit(ctx, rec); err != nil {
		return nil, err
	}
	if canonical, ok := NormalizeDate(rec.Date); ok {
		rec.Date = canonical
	}

	receipt := &models.BookingReceipt{
		Reference: uuid.New().String(),
		Record:    rec,
		Message:   ConfirmationMessage,
		CreatedAt: time.Now().UTC(),
	}
	if s.Receipts != nil {
		// Best effort: the reservation row is already durable, a lost
		// receipt only disables later lookup by reference.
		if err := s.Receipts.Save(ctx, receipt); err != nil {
			logger.Warn("failed to cache booking receipt",
				zap.String("reference", receipt.Reference), zap.Error(err))
		}
	}
	return receipt, nil
}

func (s *DefaultBookingService) Receipt(ctx context.Context, reference string) (*models.BookingReceipt, error) {
	if s.Receipts == nil {
		return nil, nil
	}
	return s.Receipts.Get(ctx, reference)
}
