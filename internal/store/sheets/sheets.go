// Package sheets implements the store contracts on a Google Spreadsheet.
// One tab per entity, header in row 1, data from row 2, tag column last.
// Single-record lookups re-fetch the whole tab and scan linearly; acceptable
// at back-office sizes, and a documented scalability non-goal. Read-modify-
// write against a tab is not atomic, so two concurrent writers can race.
package sheets

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"hotel-backend/internal/store"
)

// Tab names inside the spreadsheet.
const (
	tabClients      = "Clients"
	tabHotels       = "Hotels"
	tabReservations = "Reservations"
	tabPayments     = "Payments"
	tabSupplies     = "Supplies"
	tabNusuk        = "Nusuk"
	tabUsers        = "Users"
)

// dataStartRow is the first data row; row 1 holds the header.
const dataStartRow = 2

// Store wraps the Sheets API client for one spreadsheet.
type Store struct {
	svc           *sheets.Service
	spreadsheetID string
}

// New connects to the Sheets API with a service-account credentials file and
// returns the full store bundle.
func New(ctx context.Context, spreadsheetID, credentialsFile string) (store.Stores, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return store.Stores{}, fmt.Errorf("sheets client: %w", err)
	}

	s := &Store{svc: svc, spreadsheetID: spreadsheetID}
	log.Printf("[Sheets] Using spreadsheet %s", spreadsheetID)

	return store.Stores{
		Clients:      &ClientSheet{s},
		Hotels:       &HotelSheet{s},
		Reservations: &ReservationSheet{s},
		Payments:     &PaymentSheet{s},
		Supplies:     &SupplySheet{s},
		Nusuk:        &NusukSheet{s},
		Users:        &UserSheet{s},
		Pinger:       s,
	}, nil
}

// Ping verifies the spreadsheet is reachable.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	return err
}

// rows fetches every data row of a tab. Rows come back ragged: trailing blank
// cells are omitted by the API, so decoders must tolerate short rows.
func (s *Store) rows(ctx context.Context, tab string) ([][]interface{}, error) {
	rng := fmt.Sprintf("%s!A%d:Z", tab, dataStartRow)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", tab, err)
	}
	return resp.Values, nil
}

// appendRow appends one record row to a tab.
func (s *Store) appendRow(ctx context.Context, tab string, row []interface{}) error {
	rng := fmt.Sprintf("%s!A%d", tab, dataStartRow)
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append %s: %w", tab, err)
	}
	return nil
}

// overwriteRow replaces a full record row. rowNum is the 1-based sheet row,
// i.e. slice position + dataStartRow.
func (s *Store) overwriteRow(ctx context.Context, tab string, rowNum int, row []interface{}) error {
	rng := fmt.Sprintf("%s!A%d", tab, rowNum)
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update %s row %d: %w", tab, rowNum, err)
	}
	return nil
}

// sheetRow converts a data slice index to its 1-based sheet row number.
func sheetRow(index int) int {
	return index + dataStartRow
}
