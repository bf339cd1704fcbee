package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Store is the Google Sheets implementation of the reservation row store.
// The spreadsheet is the source of truth; every read goes to the API.
type Store struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// New authenticates with a service-account credentials JSON blob and binds
// the store to one spreadsheet.
func New(ctx context.Context, credentialsJSON, spreadsheetID string) (*Store, error) {
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate with Google Sheets: %w", err)
	}
	return &Store{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (s *Store) ReadRange(ctx context.Context, rangeSpec string) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rangeSpec).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			// The API hands cells back as interface{}; with USER_ENTERED
			// writes they are strings, but don't trust that for old rows.
			if str, ok := cell.(string); ok {
				row[i] = str
			} else {
				row[i] = fmt.Sprint(cell)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *Store) AppendRow(ctx context.Context, rangeSpec string, row []string) error {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}
	vr := &gsheets.ValueRange{Values: [][]interface{}{values}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, rangeSpec, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}
