package models

import "time"

// ReservationRecord is one durable reservation row. Records are immutable once
// stored; this system only ever appends them.
type ReservationRecord struct {
	Date       string `json:"date"`     // canonical "YYYY-MM-DD"; legacy rows may carry "DD/MM/YYYY"
	TimeSlot   string `json:"timeSlot"` // must match a catalog label verbatim
	Department string `json:"department"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
}

// BookingRequest is the submit-reservation payload. All five fields are
// required; validation happens in the admitter, not via binding tags, so the
// caller always gets the same validation error shape.
type BookingRequest struct {
	Date       string `json:"date"`
	TimeSlot   string `json:"timeSlot"`
	Department string `json:"department"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
}

// Record converts the request into its durable form.
func (r BookingRequest) Record() ReservationRecord {
	return ReservationRecord{
		Date:       r.Date,
		TimeSlot:   r.TimeSlot,
		Department: r.Department,
		Name:       r.Name,
		Phone:      r.Phone,
	}
}

// BookingReceipt is the cached confirmation for an admitted reservation,
// retrievable by its reference code until the TTL runs out.
type BookingReceipt struct {
	Reference string            `json:"reference"`
	Record    ReservationRecord `json:"record"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"createdAt"`
}
