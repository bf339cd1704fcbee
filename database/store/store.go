package store

import (
	"context"

	"medbook/models"
)

// Range specs use A1 notation. The sheet name before "!" is the table
// namespace; backends that are not sheet-shaped may ignore the cell bounds.
const (
	// ReservationReadRange covers every stored reservation row, skipping the
	// header row: date, time slot, department, name, phone.
	ReservationReadRange = "Reservations!A2:E"
	// ReservationAppendRange is the open-ended range new rows are appended to.
	ReservationAppendRange = "Reservations!A:E"
	// HealthCheckRange is a single cell, cheap enough to poll.
	HealthCheckRange = "Reservations!A1:A1"
)

// RowStore is the minimal contract this system needs from the reservation
// table: read a range of string rows, append one string row. No transactions,
// no conditional writes; the admission logic is built around that.
type RowStore interface {
	ReadRange(ctx context.Context, rangeSpec string) ([][]string, error)
	AppendRow(ctx context.Context, rangeSpec string, row []string) error
}

// RowFromRecord lays a record out in column order A..E.
func RowFromRecord(rec models.ReservationRecord) []string {
	return []string{rec.Date, rec.TimeSlot, rec.Department, rec.Name, rec.Phone}
}

// RecordFromRow maps one stored row back to a record. Short rows are padded
// with empty cells rather than rejected; the counting layer decides what to
// do with incomplete data.
func RecordFromRow(row []string) models.ReservationRecord {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return models.ReservationRecord{
		Date:       cell(0),
		TimeSlot:   cell(1),
		Department: cell(2),
		Name:       cell(3),
		Phone:      cell(4),
	}
}

// RecordsFromRows maps a full range read.
func RecordsFromRows(rows [][]string) []models.ReservationRecord {
	records := make([]models.ReservationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, RecordFromRow(row))
	}
	return records
}
